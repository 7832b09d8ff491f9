package types

// DefaultVersion is the fallback version when no AppContext is bound
const DefaultVersion = "dev"

// AppContext carries application-wide information into kong commands
type AppContext struct {
	Version string
}
