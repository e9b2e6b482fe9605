package sources

// Config holds configuration for fetching the raw source tables.
type Config struct {
	// Mode selects where pages are read from: "http" or "storage".
	Mode string `mapstructure:"mode" default:"http"`
	// UNURL is the UN M49 country table.
	UNURL string `mapstructure:"un_url" default:"https://unstats.un.org/unsd/methods/m49/m49alpha.htm"`
	// WorldAtlasURL is the WorldAtlas country code table.
	WorldAtlasURL string `mapstructure:"worldatlas_url" default:"https://www.worldatlas.com/aatlas/ctycodes.htm"`
	// WikipediaURL is the Wikipedia list of international dialing codes.
	WikipediaURL string `mapstructure:"wikipedia_url" default:"https://en.wikipedia.org/wiki/International_dialing_codes"`
	// UserAgent is sent with every HTTP request.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (X11; U; Linux i686)"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// SnapshotPrefix is the object prefix for stored pages.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"sources"`
	// Snapshot stores every page fetched over HTTP in the bucket.
	Snapshot bool `mapstructure:"snapshot" default:"false"`
}

const (
	ModeHTTP    = "http"
	ModeStorage = "storage"
)

// Source names, also used as snapshot object names.
const (
	NameUN         = "un"
	NameWorldAtlas = "worldatlas"
	NameWikipedia  = "wikipedia"
)

// URLs maps source names to their configured URLs.
func (c Config) URLs() map[string]string {
	return map[string]string{
		NameUN:         c.UNURL,
		NameWorldAtlas: c.WorldAtlasURL,
		NameWikipedia:  c.WikipediaURL,
	}
}
