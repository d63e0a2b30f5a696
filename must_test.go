package econfig_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/0xalexb/econfig"
	"github.com/0xalexb/econfig/config"
	"github.com/0xalexb/econfig/config/fetcher/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mustCaseEnv = "ECONFIG_MUST_CASE"

//nolint:gochecknoglobals // cases executed in a child test process.
var mustCases = map[string]func(){
	"get-missing": func() {
		doc := econfig.MustOpen(serverFile)
		econfig.MustGet[int](doc, "server.timeout")
	},
	"lookup-missing": func() {
		econfig.MustLookup(econfig.MustOpen(serverFile), "database.replica")
	},
	"lookup-value-missing": func() {
		var port int

		econfig.MustLookupValue(econfig.MustOpen(serverFile), "server.timeout", &port)
	},
	"setting-lookup-missing": func() {
		database := econfig.MustLookup(econfig.MustOpen(serverFile), "database")
		econfig.MustSettingLookup(database, "primary.user")
	},
	"setting-lookup-value-missing": func() {
		var user string

		primary := econfig.MustLookup(econfig.MustOpen(serverFile), "database.primary")
		econfig.MustSettingLookupValue(primary, "user", &user)
	},
	"setting-get-missing": func() {
		database := econfig.MustLookup(econfig.MustOpen(serverFile), "database")
		econfig.MustSettingGet[string](database, "primary.user")
	},
	"elem-out-of-range": func() {
		list := econfig.MustLookup(econfig.MustOpen(serverFile), "list")
		econfig.MustElem(list, 5)
	},
	"elem-value-out-of-range": func() {
		list := econfig.MustLookup(econfig.MustOpen(serverFile), "list")
		econfig.MustElemValue[int](list, 3)
	},
	"length-empty": func() {
		econfig.MustLength(econfig.MustLookup(econfig.MustOpen(serverFile), "empty"))
	},
	"open-missing": func() {
		econfig.MustOpen("testdata/missing.yaml")
	},
	"read-file-missing": func() {
		econfig.MustReadFile(config.NewDocument(), "testdata/missing.yaml")
	},
	"read-syntax-error": func() {
		econfig.MustRead(config.NewDocument(), memory.FromString("inline.yaml", "a: 1\na: 2\n"))
	},
	"custom-exit-code": func() {
		econfig.SetDefault(econfig.NewAsserter(econfig.WithExitCode(3)))
		econfig.MustGet[int](econfig.MustOpen(serverFile), "server.timeout")
	},
}

func TestMustAccessors_TerminateProcess(t *testing.T) {
	if name := os.Getenv(mustCaseEnv); name != "" {
		mustCases[name]()

		return
	}

	t.Parallel()

	testCases := []struct {
		name     string
		wantCode int
		want     string
	}{
		{name: "get-missing", wantCode: 1, want: "error occurred in testdata/server.yaml: unable to find server.timeout"},
		{name: "lookup-missing", wantCode: 1, want: "error occurred in testdata/server.yaml: unable to find database.replica"},
		{name: "lookup-value-missing", wantCode: 1, want: "error occurred in testdata/server.yaml: unable to find server.timeout"},
		{name: "setting-lookup-missing", wantCode: 1, want: "error occurred in testdata/server.yaml: unable to find primary.user"},
		{name: "setting-lookup-value-missing", wantCode: 1, want: "error occurred in testdata/server.yaml: unable to find user"},
		{name: "setting-get-missing", wantCode: 1, want: "error occurred in testdata/server.yaml: unable to find primary.user"},
		{name: "elem-out-of-range", wantCode: 1, want: "error occurred in testdata/server.yaml:4"},
		{name: "elem-value-out-of-range", wantCode: 1, want: "error occurred in testdata/server.yaml:4"},
		{name: "length-empty", wantCode: 1, want: "error occurred in testdata/server.yaml:5"},
		{name: "open-missing", wantCode: 1, want: "error occurred in testdata/missing.yaml:0"},
		{name: "read-file-missing", wantCode: 1, want: "error occurred in testdata/missing.yaml:0"},
		{name: "read-syntax-error", wantCode: 1, want: "error occurred in inline.yaml:2"},
		{name: "custom-exit-code", wantCode: 3, want: "error occurred in testdata/server.yaml: unable to find server.timeout"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cmd := exec.Command(os.Args[0], "-test.run=^TestMustAccessors_TerminateProcess$") // #nosec G204 -- re-executes the test binary
			cmd.Env = append(os.Environ(), mustCaseEnv+"="+testCase.name)

			var stderr bytes.Buffer

			cmd.Stderr = &stderr

			err := cmd.Run()

			var exitErr *exec.ExitError
			require.True(t, errors.As(err, &exitErr), "process should terminate with a failure status, got %v", err)
			assert.Equal(t, testCase.wantCode, exitErr.ExitCode())
			assert.Equal(t, testCase.want+"\n", stderr.String())
		})
	}
}

// The tests below swap the process-wide Asserter and therefore do not run in parallel.

func TestMustAccessors_ReturnValues(t *testing.T) {
	var output bytes.Buffer

	econfig.SetDefault(newTestAsserter(&output))
	t.Cleanup(func() { econfig.SetDefault(nil) })

	doc := econfig.MustOpen(serverFile)

	assert.Equal(t, 8080, econfig.MustGet[int](doc, "server.port"))
	assert.Equal(t, "server", econfig.MustLookup(doc, "server").Name())

	var host string

	econfig.MustLookupValue(doc, "server.host", &host)
	assert.Equal(t, "api.example.com", host)

	database := econfig.MustLookup(doc, "database")
	primary := econfig.MustSettingLookup(database, "primary")
	assert.Equal(t, "db.example.com", econfig.MustSettingGet[string](database, "primary.host"))

	var port int

	econfig.MustSettingLookupValue(primary, "port", &port)
	assert.Equal(t, 5432, port)

	list := econfig.MustLookup(doc, "list")
	assert.Equal(t, 3, econfig.MustLength(list))
	assert.Equal(t, "list.[0]", econfig.MustElem(list, 0).Path())
	assert.Equal(t, 3, econfig.MustElemValue[int](list, 2))

	assert.Empty(t, output.String())
}

func TestMustGet_TryGetFallsBackWhereMustGetTerminates(t *testing.T) {
	var output bytes.Buffer

	econfig.SetDefault(newTestAsserter(&output))
	t.Cleanup(func() { econfig.SetDefault(nil) })

	doc := econfig.MustOpen(serverFile)

	assert.Equal(t, 0, econfig.TryGet[int](doc, "server.timeout"))
	assert.PanicsWithValue(t, exitCode(1), func() { econfig.MustGet[int](doc, "server.timeout") })
	assert.Equal(t, "error occurred in testdata/server.yaml: unable to find server.timeout\n", output.String())
}

func TestDefault_SetDefaultNilRestoresFallback(t *testing.T) {
	fallback := econfig.Default()

	custom := econfig.NewAsserter()
	econfig.SetDefault(custom)
	assert.Same(t, custom, econfig.Default())

	econfig.SetDefault(nil)
	assert.Same(t, fallback, econfig.Default())
}
