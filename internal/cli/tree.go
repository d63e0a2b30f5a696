package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/0xalexb/econfig"
	"github.com/0xalexb/econfig/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// treeColors defines the colors of the tree listing.
type treeColors struct {
	Name  *color.Color
	Kind  *color.Color
	Value *color.Color
	Line  *color.Color
}

func newTreeColors(noColor bool) *treeColors {
	colors := &treeColors{
		Name:  color.New(color.FgBlue, color.Bold),
		Kind:  color.New(color.FgYellow),
		Value: color.New(color.FgGreen),
		Line:  color.New(color.Faint),
	}

	if noColor {
		colors.Name.DisableColor()
		colors.Kind.DisableColor()
		colors.Value.DisableColor()
		colors.Line.DisableColor()
	}

	return colors
}

func newTreeCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE [PATH]",
		Short: "Print the settings under PATH with their kinds and source lines",
		Args:  cobra.RangeArgs(1, 2),
		Run: func(_ *cobra.Command, args []string) {
			doc := st.open(args[0])

			path := "."
			if len(args) == 2 {
				path = args[1]
			}

			setting, err := econfig.Lookup(doc, path)
			st.check(err)

			label := setting.Name()
			if setting.IsRoot() {
				label = doc.Name()
			}

			printTree(st.stdout, newTreeColors(st.noColor), setting, label, 0)
		},
	}
}

// printTree writes setting and its descendants, one per line, indented by depth.
func printTree(w io.Writer, colors *treeColors, setting *config.Setting, label string, depth int) {
	var line strings.Builder

	line.WriteString(strings.Repeat("  ", depth))
	line.WriteString(colors.Name.Sprint(label))
	line.WriteString(" ")
	line.WriteString(colors.Kind.Sprint(setting.Kind().String()))

	if setting.Kind().IsAggregate() {
		fmt.Fprintf(&line, " (%d)", setting.Len())
	} else {
		line.WriteString(" = ")
		line.WriteString(colors.Value.Sprint(scalarText(setting)))
	}

	if setting.SourceLine() > 0 {
		line.WriteString(" ")
		line.WriteString(colors.Line.Sprintf(":%d", setting.SourceLine()))
	}

	_, _ = fmt.Fprintln(w, line.String())

	for index := range setting.Len() {
		child := setting.Elem(index)

		childLabel := child.Name()
		if setting.Kind() == config.KindList {
			childLabel = "[" + strconv.Itoa(index) + "]"
		}

		printTree(w, colors, child, childLabel, depth+1)
	}
}

func scalarText(setting *config.Setting) string {
	switch setting.Kind() {
	case config.KindInt:
		value, _ := config.Value[int64](setting)

		return strconv.FormatInt(value, 10)
	case config.KindFloat:
		value, _ := config.Value[float64](setting)

		return strconv.FormatFloat(value, 'g', -1, 64)
	case config.KindBool:
		value, _ := config.Value[bool](setting)

		return strconv.FormatBool(value)
	case config.KindString:
		value, _ := config.Value[string](setting)

		return strconv.Quote(value)
	default:
		return "null"
	}
}
