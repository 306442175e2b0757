package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPhase      = "phase"
	KeyPlugin     = "plugin"
	KeyBuildID    = "build_id"
	KeySrcPath    = "src_path"
	KeyDestPath   = "dest_path"
	KeyURL        = "url"
	KeyPath       = "path"
	KeyPattern    = "pattern"
	KeyTitle      = "title"
	KeyOldTitle   = "old_title"
	KeyLink       = "link"
	KeyDryRun     = "dry_run"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Phase(name string) slog.Attr     { return slog.String(KeyPhase, name) }
func Plugin(name string) slog.Attr    { return slog.String(KeyPlugin, name) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func SrcPath(p string) slog.Attr      { return slog.String(KeySrcPath, p) }
func DestPath(p string) slog.Attr     { return slog.String(KeyDestPath, p) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Pattern(p string) slog.Attr      { return slog.String(KeyPattern, p) }
func Title(t string) slog.Attr        { return slog.String(KeyTitle, t) }
func OldTitle(t string) slog.Attr     { return slog.String(KeyOldTitle, t) }
func Link(target string) slog.Attr    { return slog.String(KeyLink, target) }
func DryRun(on bool) slog.Attr        { return slog.Bool(KeyDryRun, on) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
