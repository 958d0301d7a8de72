// Package config defines the built-in rule set for sortd: which
// directories get scanned, where each category of file lands, and the
// pattern and extension tables the classifier consults. Everything is
// fixed at construction; nothing is loaded from disk.
package config

import "path/filepath"

// Category names a destination subfolder, e.g. Photos or Compressed.
type Category string

// Destination categories. Each maps to a subfolder under one of the four
// destination roots, see DestinationFor.
const (
	Audio       Category = "Audio"
	Photos      Category = "Photos"
	Screenshots Category = "Screenshots"
	Video       Category = "Video"
	Shop        Category = "Shop"
	Camera      Category = "Camera"
	Compressed  Category = "Compressed"
	DiskImages  Category = "DiskImages"
	CAD         Category = "CAD"
	Drawings    Category = "Drawings"
	Objects     Category = "Objects"
	Prints      Category = "Prints"
	Text        Category = "Text"
	Docs        Category = "Docs"
	Slides      Category = "Slides"
	Pdf         Category = "Pdf"
	Sheets      Category = "Sheets"
)

// Config is the complete rule set for one run.
type Config struct {
	// Home is the directory the source and destination trees hang off.
	Home string

	// Sources are scanned in declared order, one level deep.
	Sources []string

	// Destination roots. Category subfolders are created under these
	// on demand.
	MediaRoot   string
	ArchiveRoot string
	DocsRoot    string
	ThreeDRoot  string

	// MusicAppDir is the Music.app library folder. It lives inside a
	// source directory but is never touched.
	MusicAppDir string

	// IgnorePatterns are glob patterns matched against base names.
	// Any match ignores the entry; the first match in declared order
	// is the one reported.
	IgnorePatterns []string

	// SilentIgnores lists the ignore patterns whose matches produce no
	// log line even in verbose mode.
	SilentIgnores []string

	// ScreenshotPatterns route matching files to Media/Screenshots
	// ahead of the extension table.
	ScreenshotPatterns []string

	// Extensions maps a lower-cased extension (no dot) to its
	// category. Extensions absent here leave the file in place.
	Extensions map[string]Category
}

// Default returns the rule set rooted at home. Production passes the
// user's home directory; tests pass a temp directory so the whole tree
// stays sandboxed.
func Default(home string) *Config {
	return &Config{
		Home: home,
		Sources: []string{
			filepath.Join(home, "Desktop"),
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Documents"),
			filepath.Join(home, "Pictures"),
			filepath.Join(home, "Movies"),
			filepath.Join(home, "Music"),
		},
		MediaRoot:   filepath.Join(home, "Media"),
		ArchiveRoot: filepath.Join(home, "Archive"),
		DocsRoot:    filepath.Join(home, "Docs"),
		ThreeDRoot:  filepath.Join(home, "3D"),
		MusicAppDir: filepath.Join(home, "Music", "Music"),
		IgnorePatterns: []string{
			"dont_move_me.txt",
			".tmp",
			".crdownload",
			"*.part",
			".DS_Store",
			"Thumbs.db",
			"iTunes",
			"Music Library.musiclibrary",
			"*.musiclibrary",
			"System",
			"Library",
			".Trash",
			"Applications",
			".localized",
		},
		SilentIgnores: []string{
			".DS_Store",
			".localized",
		},
		ScreenshotPatterns: []string{
			"Screen Shot *.png",
			"Screenshot *.png",
			"CleanShot *.png",
			"Monosnap *.png",
		},
		Extensions: defaultExtensions(),
	}
}

// DestinationFor returns the directory files of the given category land
// in. The second return is false for a category with no destination.
func (c *Config) DestinationFor(category Category) (string, bool) {
	var root string
	switch category {
	case Audio, Photos, Screenshots, Video, Shop, Camera:
		root = c.MediaRoot
	case Compressed, DiskImages:
		root = c.ArchiveRoot
	case CAD, Drawings, Objects, Prints:
		root = c.ThreeDRoot
	case Text, Docs, Slides, Pdf, Sheets:
		root = c.DocsRoot
	default:
		return "", false
	}
	return filepath.Join(root, string(category)), true
}

// IsSilent reports whether matches of the given ignore pattern are
// suppressed from the log.
func (c *Config) IsSilent(pattern string) bool {
	for _, silent := range c.SilentIgnores {
		if silent == pattern {
			return true
		}
	}
	return false
}

// extensionTable groups the rule extensions by category. The "raw"
// extension and CANON-named directories are handled by the classifier
// directly and do not appear here.
var extensionTable = map[Category][]string{
	Audio:      {"mp3", "wav", "flac", "aac", "ogg", "m4a", "wma", "aiff", "au"},
	Photos:     {"jpg", "jpeg", "png", "gif", "bmp", "tiff", "tif", "webp", "heic", "heif", "svg"},
	Video:      {"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm", "m4v", "3gp", "mpg", "mpeg", "ogv"},
	Shop:       {"psd", "pxd", "ai", "sketch", "fig", "xd", "indd", "lrcat", "lrtemplate"},
	Compressed: {"zip", "rar", "7z", "tar", "gz", "bz2", "xz", "z"},
	DiskImages: {"dmg", "iso", "img", "bin", "cue", "pkg"},
	CAD:        {"stl", "ply", "step", "stp", "iges", "igs", "sat", "brep"},
	Drawings:   {"dxf", "dwg"},
	Objects:    {"obj", "3ds", "fbx", "dae", "blend", "max", "ma", "mb"},
	Prints:     {"gcode", "x3g", "3mf"},
	Text:       {"txt", "md", "rtf", "tex"},
	Docs:       {"doc", "docx", "pages", "odt"},
	Slides:     {"ppt", "pptx", "key", "odp"},
	Pdf:        {"pdf"},
	Sheets:     {"xls", "xlsx", "numbers", "ods", "csv"},
}

func defaultExtensions() map[string]Category {
	extensions := make(map[string]Category)
	for category, list := range extensionTable {
		for _, ext := range list {
			extensions[ext] = category
		}
	}
	return extensions
}
