package econfig

import (
	"fmt"

	"github.com/0xalexb/econfig/config"
)

// Open creates a document and reads the file at path into it.
func Open(path string) (*config.Document, error) {
	doc := config.NewDocument()

	err := ReadFile(doc, path)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ReadFile reads the file at path into doc.
// On failure it returns a *ReadError naming the file and the line the parser stopped at.
func ReadFile(doc *config.Document, path string) error {
	if doc == nil {
		return invariant("ReadFile", "nil document")
	}

	err := doc.ReadFile(path)
	if err != nil {
		return &ReadError{File: doc.ErrorFile(), Line: doc.ErrorLine(), Err: err}
	}

	return nil
}

// Read reads src into doc. Failures are reported like ReadFile's.
func Read(doc *config.Document, src config.Source) error {
	if doc == nil {
		return invariant("Read", "nil document")
	}

	err := doc.Read(src)
	if err != nil {
		return &ReadError{File: doc.ErrorFile(), Line: doc.ErrorLine(), Err: err}
	}

	return nil
}

// Lookup resolves an absolute path in doc.
// A missing path yields a *LookupError naming the document's source file.
func Lookup(doc *config.Document, path string) (*config.Setting, error) {
	self, err := selfSetting("Lookup", doc)
	if err != nil {
		return nil, err
	}

	setting := doc.Lookup(path)
	if setting == nil {
		return nil, &LookupError{File: self.SourceFile(), Path: path, Err: ErrNotFound}
	}

	return setting, nil
}

// Get resolves an absolute path and extracts its value as T.
func Get[T config.Scalar](doc *config.Document, path string) (T, error) {
	var zero T

	setting, err := Lookup(doc, path)
	if err != nil {
		return zero, err
	}

	value, ok := config.Value[T](setting)
	if !ok {
		return zero, &LookupError{File: setting.SourceFile(), Path: path, Err: mismatch[T](setting)}
	}

	return value, nil
}

// LookupValue resolves an absolute path and stores its value in out.
// out is left untouched on failure.
func LookupValue[T config.Scalar](doc *config.Document, path string, out *T) error {
	if out == nil {
		return invariant("LookupValue", "nil output for %s", path)
	}

	if doc == nil {
		return invariant("LookupValue", "nil document")
	}

	value, ok := config.LookupValue[T](doc, path)
	if ok {
		*out = value

		return nil
	}

	self, err := selfSetting("LookupValue", doc)
	if err != nil {
		return err
	}

	cause := ErrNotFound
	if setting := doc.Lookup(path); setting != nil {
		cause = mismatch[T](setting)
	}

	return &LookupError{File: self.SourceFile(), Path: path, Err: cause}
}

// TryGet is the best-effort form of Get: it returns the zero value of T when
// the path is absent or holds something that is not a T. It never fails.
func TryGet[T config.Scalar](doc *config.Document, path string) T {
	var zero T

	return TryGetOr(doc, path, zero)
}

// TryGetOr is TryGet with a caller-chosen default.
func TryGetOr[T config.Scalar](doc *config.Document, path string, def T) T {
	if doc == nil {
		return def
	}

	value, ok := config.LookupValue[T](doc, path)
	if !ok {
		return def
	}

	return value
}

// SettingLookup resolves path relative to setting.
// The diagnostic names the file setting was read from and the relative path.
func SettingLookup(setting *config.Setting, path string) (*config.Setting, error) {
	if setting == nil {
		return nil, invariant("SettingLookup", "nil setting")
	}

	found := setting.Lookup(path)
	if found == nil {
		return nil, &LookupError{File: setting.SourceFile(), Path: path, Err: ErrNotFound}
	}

	return found, nil
}

// SettingLookupValue stores the value of the direct child name of setting in out.
// Unlike SettingGet, name is not a path.
func SettingLookupValue[T config.Scalar](setting *config.Setting, name string, out *T) error {
	if out == nil {
		return invariant("SettingLookupValue", "nil output for %s", name)
	}

	if setting == nil {
		return invariant("SettingLookupValue", "nil setting")
	}

	value, ok := config.MemberValue[T](setting, name)
	if ok {
		*out = value

		return nil
	}

	cause := ErrNotFound
	if member := setting.Member(name); member != nil {
		cause = mismatch[T](member)
	}

	return &LookupError{File: setting.SourceFile(), Path: name, Err: cause}
}

// Elem returns the element at index of a list or group.
// An invalid index yields a *SettingError located at the container.
func Elem(setting *config.Setting, index int) (*config.Setting, error) {
	if setting == nil {
		return nil, invariant("Elem", "nil setting")
	}

	elem := setting.Elem(index)
	if elem == nil {
		return nil, &SettingError{
			File: setting.SourceFile(),
			Line: setting.SourceLine(),
			Path: setting.Path(),
			Err:  fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, setting.Len()),
		}
	}

	return elem, nil
}

// ElemValue returns the value at index of a list or group as T.
func ElemValue[T config.Scalar](setting *config.Setting, index int) (T, error) {
	var zero T

	elem, err := Elem(setting, index)
	if err != nil {
		return zero, err
	}

	value, ok := config.Value[T](elem)
	if !ok {
		return zero, &SettingError{
			File: setting.SourceFile(),
			Line: setting.SourceLine(),
			Path: setting.Path(),
			Err:  mismatch[T](elem),
		}
	}

	return value, nil
}

// SettingGet resolves a path of any depth relative to setting and extracts its value as T.
// It is SettingLookup followed by extraction, where SettingLookupValue only sees direct children.
func SettingGet[T config.Scalar](setting *config.Setting, path string) (T, error) {
	var zero T

	found, err := SettingLookup(setting, path)
	if err != nil {
		return zero, err
	}

	value, ok := config.Value[T](found)
	if !ok {
		return zero, &LookupError{File: setting.SourceFile(), Path: path, Err: mismatch[T](found)}
	}

	return value, nil
}

// Length returns the number of elements of a list or group, which must be positive.
// Scalars and empty containers yield a *SettingError wrapping ErrEmptySetting.
func Length(setting *config.Setting) (int, error) {
	if setting == nil {
		return 0, invariant("Length", "nil setting")
	}

	length := setting.Len()
	if length <= 0 {
		return 0, &SettingError{
			File: setting.SourceFile(),
			Line: setting.SourceLine(),
			Path: setting.Path(),
			Err:  fmt.Errorf("%w: %s is a %s", ErrEmptySetting, displayPath(setting), setting.Kind()),
		}
	}

	return length, nil
}

// selfSetting resolves "." to identify the document's source file.
// The lookup cannot fail for a document created by config.NewDocument.
func selfSetting(op string, doc *config.Document) (*config.Setting, error) {
	if doc == nil {
		return nil, invariant(op, "nil document")
	}

	self := doc.Lookup(".")
	if self == nil {
		return nil, invariant(op, "self lookup returned nothing")
	}

	return self, nil
}

func mismatch[T config.Scalar](setting *config.Setting) error {
	var zero T

	return fmt.Errorf("%w: %s is a %s, not %T", ErrTypeMismatch, displayPath(setting), setting.Kind(), zero)
}

func displayPath(setting *config.Setting) string {
	if setting.IsRoot() {
		return "root"
	}

	return setting.Path()
}
