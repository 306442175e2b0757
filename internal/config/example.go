package config

// Example is the config written by the init command.
const Example = `site_name: My Docs
docs_dir: docs
use_directory_urls: true

# Globs relative to docs_dir. Matching files are left out of the build.
exclude_docs:
  - "drafts/**"

# Without a nav key the navigation mirrors the docs directory.
# nav:
#   - index.md
#   - 010--Getting-Started: 010--getting-started.md
#   - Guides:
#       - 020--guides/010--setup.md
#       - MkDocs: https://www.mkdocs.org/

logging:
  level: info   # debug, info, warn, error
  format: text  # text or json

metrics:
  textfile: ""  # e.g. /var/lib/node_exporter/stripprefix.prom

plugins:
  - search
  - strip-number-prefix:
      pattern: '^\d+--'
      verbose: false
      strict: true
      strip_links: false
      strip_nav_titles: true
      dry_run: false
`
