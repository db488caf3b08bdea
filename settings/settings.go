package settings

type (
	FS struct {
		// Root is the directory all requested paths are resolved under.
		Root string `toml:"root" yaml:"root" json:"root"`
		// IndexPage is substituted when a requested path points at a
		// directory. Kept with a leading slash, as it is appended to the
		// directory path verbatim.
		IndexPage string `toml:"index_page" yaml:"index_page" json:"index_page"`
	}

	TCP struct {
		// ReadBuffSize is the size of the buffer the request line is read
		// with. A request line longer than that is still handled, bufio
		// grows over it transparently.
		ReadBuffSize int `toml:"read_buff_size" yaml:"read_buff_size" json:"read_buff_size"`
		// FileBuffSize is the size of the buffer response bodies are
		// streamed through.
		FileBuffSize int `toml:"file_buff_size" yaml:"file_buff_size" json:"file_buff_size"`
	}
)

// Settings is an immutable configuration value. It is built once on startup
// and passed down by copy, components never reach for ambient state.
type Settings struct {
	// Port must stay outside of the reserved 0-1024 range.
	Port uint16 `toml:"port" yaml:"port" json:"port"`
	FS   FS     `toml:"fs" yaml:"fs" json:"fs"`
	TCP  TCP    `toml:"tcp" yaml:"tcp" json:"tcp"`
}

func Default() Settings {
	return Settings{
		Port: 8080,
		FS: FS{
			Root:      "static",
			IndexPage: "/index.html",
		},
		TCP: TCP{
			ReadBuffSize: 2048,
			FileBuffSize: 8192,
		},
	}
}

// Fill takes some settings and fills them with default values everywhere
// where a field is left zero.
func Fill(original Settings) (modified Settings) {
	defaults := Default()

	original.Port = customOrDefault(original.Port, defaults.Port)
	original.FS.Root = customOrDefault(original.FS.Root, defaults.FS.Root)
	original.FS.IndexPage = customOrDefault(original.FS.IndexPage, defaults.FS.IndexPage)
	original.TCP.ReadBuffSize = customOrDefault(original.TCP.ReadBuffSize, defaults.TCP.ReadBuffSize)
	original.TCP.FileBuffSize = customOrDefault(original.TCP.FileBuffSize, defaults.TCP.FileBuffSize)

	return original
}

func customOrDefault[T comparable](custom, defaultVal T) T {
	var zero T
	if custom == zero {
		return defaultVal
	}

	return custom
}
