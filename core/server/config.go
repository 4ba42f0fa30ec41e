package server

// Config holds configuration for the HTTP and MCP servers.
type Config struct {
	// Port is the port where the HTTP server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Name is the server name announced to MCP clients.
	Name string `mapstructure:"name" default:"MinIO Upload MCP Server"`
	// Version is the server version announced to MCP clients.
	Version string `mapstructure:"version" default:"1.0.0"`
}

// Address returns the listen address for the HTTP server.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}
