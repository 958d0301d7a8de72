// Package classifier decides where an entry belongs for sortd.
package classifier

import (
	"strings"

	"sortd/internal/config"
	"sortd/internal/matcher"
	"sortd/internal/scanner"
)

// Kind tags a classification decision.
type Kind string

const (
	// Ignored means the entry stays where it is, with a reason.
	Ignored Kind = "IGNORED"
	// Screenshot routes to Media/Screenshots ahead of the extension table.
	Screenshot Kind = "SCREENSHOT"
	// CameraSpecial routes raw files and CANON directories to Media/Camera.
	CameraSpecial Kind = "CAMERA_SPECIAL"
	// ExtensionMatch routes by the extension table.
	ExtensionMatch Kind = "EXTENSION_MATCH"
	// NoRule means nothing applies and the entry is left in place.
	NoRule Kind = "NO_RULE"
)

// Reasons reported for Ignored decisions that come from a structural
// rule rather than a matched pattern.
const (
	ReasonMusicAppFolder = "music-app-folder"
	ReasonDirectorySkip  = "directory-skip"
)

// Decision is the result of classifying one entry.
type Decision struct {
	Kind     Kind
	Category config.Category // set for Screenshot, CameraSpecial and ExtensionMatch
	Reason   string          // set for Ignored: the matched pattern or a reason constant
	Silent   bool            // Ignored subtype whose log line is suppressed
}

// Classify decides what to do with entry. Rules apply in a fixed order:
// ignore patterns, the Music.app library folder, directories,
// screenshot patterns, then the extension table. The decision depends
// only on the entry snapshot and the rule set; nothing here touches the
// filesystem.
func Classify(entry scanner.Entry, cfg *config.Config) Decision {
	// Step 1: Ignore patterns. The first match in declared order is
	// the one reported.
	if pattern, ok := matcher.MatchAny(cfg.IgnorePatterns, entry.Name); ok {
		return Decision{
			Kind:   Ignored,
			Reason: pattern,
			Silent: cfg.IsSilent(pattern),
		}
	}

	// Step 2: The Music.app library folder sits inside a source
	// directory and must never move.
	if entry.IsDir && entry.FullPath == cfg.MusicAppDir {
		return Decision{Kind: Ignored, Reason: ReasonMusicAppFolder}
	}

	// Step 3: Directories. CANON-named card dumps move wholesale to
	// Camera, everything else stays put.
	if entry.IsDir {
		if strings.Contains(entry.Name, "CANON") {
			return Decision{Kind: CameraSpecial, Category: config.Camera}
		}
		return Decision{Kind: Ignored, Reason: ReasonDirectorySkip}
	}

	// Step 4: Screenshot patterns pre-empt the extension table, so a
	// matching .png lands in Screenshots rather than Photos.
	if _, ok := matcher.MatchAny(cfg.ScreenshotPatterns, entry.Name); ok {
		return Decision{Kind: Screenshot, Category: config.Screenshots}
	}

	// Step 5: Extension table.
	ext := Extension(entry.Name)
	if ext == "raw" {
		return Decision{Kind: CameraSpecial, Category: config.Camera}
	}
	if category, ok := cfg.Extensions[ext]; ok {
		return Decision{Kind: ExtensionMatch, Category: category}
	}
	return Decision{Kind: NoRule}
}

// Extension returns the lower-cased extension of name, the part after
// the last dot. A name without a dot has no extension.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// Destination returns the directory the decision routes to. Ignored and
// NoRule decisions route nowhere.
func (d Decision) Destination(cfg *config.Config) (string, bool) {
	switch d.Kind {
	case Screenshot, CameraSpecial, ExtensionMatch:
		return cfg.DestinationFor(d.Category)
	default:
		return "", false
	}
}
