package fxconfig

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/econfig"
	"github.com/0xalexb/econfig/config"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when a document is registered without a name.
var ErrEmptyName = errors.New("document name must not be empty")

// NewModule creates an Fx module that reads the file at path and provides the
// resulting *config.Document under the DI named tag name.
// The document is read during application construction, so an unreadable file
// fails the start even when nothing depends on the document yet.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*config.Document, error) {
					doc, err := econfig.Open(path)
					if err != nil {
						return nil, err
					}

					slog.Debug("configuration document loaded", slog.String("name", name), slog.String("file", path))

					return doc, nil
				},
				fx.ResultTags(nameTag(name)),
			),
		),
		fx.Invoke(
			fx.Annotate(
				func(*config.Document) {},
				fx.ParamTags(nameTag(name)),
			),
		),
	)
}

// Value provides the scalar at path of the document docName as a T tagged resultName.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Value[T config.Scalar](docName, path, resultName string) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(doc *config.Document) (T, error) {
				return econfig.Get[T](doc, path)
			},
			fx.ParamTags(nameTag(docName)),
			fx.ResultTags(nameTag(resultName)),
		),
	)
}

// Section provides the section at path of the document docName decoded into a *T.
// Defaults and validation are applied as econfig.Provider does.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Section[T any](docName, path string) fx.Option {
	return fx.Provide(
		fx.Annotate(
			econfig.Provider(new(T), path),
			fx.ParamTags(nameTag(docName)),
		),
	)
}

func nameTag(name string) string {
	return fmt.Sprintf(`name:"%s"`, name)
}
