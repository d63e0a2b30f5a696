package config_test

import (
	"testing"

	"github.com/0xalexb/econfig/config"
	"github.com/0xalexb/econfig/config/fetcher/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetting_Lookup_Paths(t *testing.T) {
	t.Parallel()

	doc := readTestdata(t)

	testCases := []struct {
		name     string
		path     string
		wantPath string
		wantKind config.Kind
	}{
		{name: "group", path: "server", wantPath: "server", wantKind: config.KindGroup},
		{name: "nested scalar", path: "server.port", wantPath: "server.port", wantKind: config.KindInt},
		{name: "index segment", path: "servers.[1].host", wantPath: "servers.[1].host", wantKind: config.KindString},
		{name: "attached index", path: "servers[0].port", wantPath: "servers.[0].port", wantKind: config.KindInt},
		{name: "list", path: "tags", wantPath: "tags", wantKind: config.KindList},
		{name: "bool", path: "server.tls", wantPath: "server.tls", wantKind: config.KindBool},
		{name: "float", path: "server.ratio", wantPath: "server.ratio", wantKind: config.KindFloat},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			setting := doc.Lookup(testCase.path)
			require.NotNil(t, setting)
			assert.Equal(t, testCase.wantPath, setting.Path())
			assert.Equal(t, testCase.wantKind, setting.Kind())
		})
	}
}

func TestSetting_Lookup_NotFound(t *testing.T) {
	t.Parallel()

	doc := readTestdata(t)

	for _, path := range []string{
		"server.timeout",
		"missing",
		"servers.[2]",
		"servers.[0].missing",
		"server.port.deeper",
		"server..port",
		"servers.[x]",
		"servers.[0",
		"tags.[-1]",
	} {
		assert.Nil(t, doc.Lookup(path), "path %q", path)
	}
}

func TestSetting_Lookup_Relative(t *testing.T) {
	t.Parallel()

	doc := readTestdata(t)
	servers := doc.Lookup("servers")
	require.NotNil(t, servers)

	host := servers.Lookup("[1].host")
	require.NotNil(t, host)
	assert.Equal(t, "servers.[1].host", host.Path())
	assert.Same(t, servers, servers.Lookup("."))
}

func TestSetting_SourceLine(t *testing.T) {
	t.Parallel()

	doc := readTestdata(t)

	assert.Equal(t, 2, doc.Lookup("server").SourceLine())
	assert.Equal(t, 4, doc.Lookup("server.port").SourceLine())
	assert.Equal(t, 9, doc.Lookup("servers.[0].port").SourceLine())
	assert.Equal(t, 12, doc.Lookup("limits").SourceLine())
	assert.Equal(t, 13, doc.Lookup("tags.[2]").SourceLine())
}

func TestSetting_NameAndParent(t *testing.T) {
	t.Parallel()

	doc := readTestdata(t)

	port := doc.Lookup("server.port")
	require.NotNil(t, port)
	assert.Equal(t, "port", port.Name())
	assert.Equal(t, "server", port.Parent().Name())
	assert.True(t, port.Parent().Parent().IsRoot())

	element := doc.Lookup("tags.[0]")
	require.NotNil(t, element)
	assert.Empty(t, element.Name())
}

func TestSetting_Member_DirectChildOnly(t *testing.T) {
	t.Parallel()

	doc := readTestdata(t)

	assert.NotNil(t, doc.Root().Member("server"))
	assert.Nil(t, doc.Root().Member("server.port"))
	assert.Nil(t, doc.Lookup("tags").Member("alpha"))
}

func TestSetting_ElemAndLen(t *testing.T) {
	t.Parallel()

	doc := readTestdata(t)

	tags := doc.Lookup("tags")
	assert.Equal(t, 3, tags.Len())
	assert.Nil(t, tags.Elem(3))
	assert.Nil(t, tags.Elem(-1))

	server := doc.Lookup("server")
	assert.Equal(t, 4, server.Len())
	assert.Equal(t, "port", server.Elem(1).Name())
	assert.Equal(t, "server.port", server.Elem(1).Path())

	assert.Equal(t, 0, doc.Lookup("limits").Len())
	assert.Equal(t, 0, doc.Lookup("server.port").Len())
	assert.Nil(t, doc.Lookup("server.port").Elem(0))
}

func TestSetting_Members(t *testing.T) {
	t.Parallel()

	doc := readTestdata(t)

	names := make([]string, 0, 4)
	for _, member := range doc.Lookup("server").Members() {
		names = append(names, member.Name())
	}

	assert.Equal(t, []string{"host", "port", "tls", "ratio"}, names)
	assert.Nil(t, doc.Lookup("tags").Members())
}

func TestSetting_NilSafe(t *testing.T) {
	t.Parallel()

	var setting *config.Setting

	assert.Equal(t, config.KindNone, setting.Kind())
	assert.Nil(t, setting.Lookup("a"))
	assert.Nil(t, setting.Member("a"))
	assert.Nil(t, setting.Elem(0))
	assert.Equal(t, 0, setting.Len())
}

func TestSetting_AliasAndMerge(t *testing.T) {
	t.Parallel()

	doc := config.NewDocument()
	require.NoError(t, doc.Read(memory.FromString("pools.yaml", `
base: &base
  size: 4
  timeout: 30
primary:
  <<: *base
  size: 8
replica: *base
`)))

	size, ok := config.LookupValue[int](doc, "primary.size")
	assert.True(t, ok)
	assert.Equal(t, 8, size)

	timeout, ok := config.LookupValue[int](doc, "primary.timeout")
	assert.True(t, ok)
	assert.Equal(t, 30, timeout)

	assert.Equal(t, 2, doc.Lookup("primary").Len())
	assert.Equal(t, config.KindGroup, doc.Lookup("replica").Kind())

	replicaSize, ok := config.LookupValue[int](doc, "replica.size")
	assert.True(t, ok)
	assert.Equal(t, 4, replicaSize)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "group", config.KindGroup.String())
	assert.Equal(t, "list", config.KindList.String())
	assert.Equal(t, "int", config.KindInt.String())
	assert.Equal(t, "none", config.KindNone.String())
	assert.Equal(t, "unknown", config.Kind(99).String())
	assert.True(t, config.KindList.IsAggregate())
	assert.False(t, config.KindNull.IsScalar())
	assert.True(t, config.KindString.IsScalar())
}
