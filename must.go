package econfig

import "github.com/0xalexb/econfig/config"

// Must returns value, or terminates through the default Asserter when err is non-nil.
func Must[T any](value T, err error) T {
	Default().Check(err)

	return value
}

// MustOpen is Open for a mandatory configuration file.
func MustOpen(path string) *config.Document {
	return Must(Open(path))
}

// MustReadFile is ReadFile with termination on failure.
func MustReadFile(doc *config.Document, path string) {
	Default().Check(ReadFile(doc, path))
}

// MustRead is Read with termination on failure.
func MustRead(doc *config.Document, src config.Source) {
	Default().Check(Read(doc, src))
}

// MustLookup is Lookup with termination on failure.
func MustLookup(doc *config.Document, path string) *config.Setting {
	return Must(Lookup(doc, path))
}

// MustGet is Get with termination on failure.
func MustGet[T config.Scalar](doc *config.Document, path string) T {
	return Must(Get[T](doc, path))
}

// MustLookupValue is LookupValue with termination on failure.
func MustLookupValue[T config.Scalar](doc *config.Document, path string, out *T) {
	Default().Check(LookupValue(doc, path, out))
}

// MustSettingLookup is SettingLookup with termination on failure.
func MustSettingLookup(setting *config.Setting, path string) *config.Setting {
	return Must(SettingLookup(setting, path))
}

// MustSettingLookupValue is SettingLookupValue with termination on failure.
func MustSettingLookupValue[T config.Scalar](setting *config.Setting, name string, out *T) {
	Default().Check(SettingLookupValue(setting, name, out))
}

// MustElem is Elem with termination on failure.
func MustElem(setting *config.Setting, index int) *config.Setting {
	return Must(Elem(setting, index))
}

// MustElemValue is ElemValue with termination on failure.
func MustElemValue[T config.Scalar](setting *config.Setting, index int) T {
	return Must(ElemValue[T](setting, index))
}

// MustSettingGet is SettingGet with termination on failure.
func MustSettingGet[T config.Scalar](setting *config.Setting, path string) T {
	return Must(SettingGet[T](setting, path))
}

// MustLength is Length with termination on failure.
func MustLength(setting *config.Setting) int {
	return Must(Length(setting))
}
