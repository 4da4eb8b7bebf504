package source

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// FileReader reads whole text files. A missing file is reported with an
// error matching fs.ErrNotExist.
type FileReader interface {
	ReadFileText(path string) (string, error)
}

// ResourceReader reads text resources packaged with the binary by logical
// name. A missing resource is reported with an error matching fs.ErrNotExist.
type ResourceReader interface {
	ReadResourceText(name string) (string, error)
}

// Environment enumerates the process environment as name/value pairs.
type Environment interface {
	Environ() map[string]string
}
