// Package stripprefix removes numeric ordering prefixes such as "010--" from
// published page paths, URLs, navigation titles and, optionally, Markdown link
// targets, while source filenames on disk keep their prefixes.
//
// The package registers itself with the plugin registry as "strip-number-prefix"
// and takes part in four phases of a build pass:
//
//   - config: compile the prefix pattern (an unparsable pattern is fatal)
//   - files: compute clean destinations and URLs, detect collisions, apply
//   - page_markdown: rewrite inline links to prefixed pages (strip_links)
//   - nav: rewrite navigation titles (strip_nav_titles)
//
// A Plugin holds no state beyond its options and the log of the current pass;
// both the log and the collision list are rebuilt by every files phase.
package stripprefix
