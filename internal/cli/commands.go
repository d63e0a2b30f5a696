package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/0xalexb/econfig"
	"github.com/0xalexb/econfig/config"

	"github.com/spf13/cobra"
)

// check terminates through the invocation's asserter when err is not nil.
func (st *state) check(err error) {
	st.asserter.Check(err)
}

// open reads the file named on the command line, terminating when it cannot be read.
func (st *state) open(path string) *config.Document {
	doc, err := econfig.Open(path)
	st.check(err)

	st.logger.Debug("configuration document loaded", slog.String("file", path))

	return doc
}

func (st *state) println(value string) {
	_, _ = fmt.Fprintln(st.stdout, value)
}

func newCheckCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Read FILE and fail with a diagnostic when it is not valid",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			st.open(args[0])
		},
	}
}

func newGetCommand(st *state) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at PATH, failing when it is missing or of another type",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			doc := st.open(args[0])

			kind := config.KindNone
			if typeName == autoType {
				setting, err := econfig.Lookup(doc, args[1])
				st.check(err)

				kind = setting.Kind()
			}

			typ, err := lookupType(typeName, kind)
			if err != nil {
				return err
			}

			value, err := typ.get(doc, args[1])
			st.check(err)
			st.println(value)

			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", autoType, "value type: "+joinedTypeNames())

	return cmd
}

func newTryCommand(st *state) *cobra.Command {
	var typeName, def string

	cmd := &cobra.Command{
		Use:   "try FILE PATH",
		Short: "Print the value at PATH, or the default when it is missing or of another type",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			doc := st.open(args[0])

			if typeName == autoType {
				setting := doc.Lookup(args[1])
				if setting == nil || !setting.Kind().IsScalar() {
					st.println(def)

					return nil
				}
			}

			typ, err := lookupType(typeName, doc.Lookup(args[1]).Kind())
			if err != nil {
				return err
			}

			value, err := typ.try(doc, args[1], def)
			if err != nil {
				return err
			}

			st.println(value)

			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", autoType, "value type: "+joinedTypeNames())
	cmd.Flags().StringVarP(&def, "default", "d", "", "value printed when PATH is missing")

	return cmd
}

func newLenCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "len FILE PATH",
		Short: "Print the number of elements of the list or group at PATH, failing when it is empty",
		Args:  cobra.ExactArgs(2),
		Run: func(_ *cobra.Command, args []string) {
			doc := st.open(args[0])

			setting, err := econfig.Lookup(doc, args[1])
			st.check(err)

			length, err := econfig.Length(setting)
			st.check(err)
			st.println(strconv.Itoa(length))
		},
	}
}

func newElemCommand(st *state) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "elem FILE PATH INDEX",
		Short: "Print the element at INDEX of the list or group at PATH",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[2], err)
			}

			doc := st.open(args[0])

			setting, err := econfig.Lookup(doc, args[1])
			st.check(err)

			kind := config.KindNone
			if typeName == autoType {
				elem, err := econfig.Elem(setting, index)
				st.check(err)

				kind = elem.Kind()
			}

			typ, err := lookupType(typeName, kind)
			if err != nil {
				return err
			}

			value, err := typ.elem(setting, index)
			st.check(err)
			st.println(value)

			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", autoType, "element type: "+joinedTypeNames())

	return cmd
}

func joinedTypeNames() string {
	return strings.Join(typeNames(), ", ")
}
