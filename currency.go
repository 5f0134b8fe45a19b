package currency

type (
	// Mapping translates between source currency descriptions and ISO codes.
	Mapping interface {
		CodeFor(name string) (string, bool)
		NameFor(code string) (string, bool)
		IsValidCode(code string) bool
	}
)
