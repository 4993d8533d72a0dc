// Package bishopart turns byte strings into drunken bishop fingerprint art:
// the small ASCII pictures OpenSSH prints next to a host key.
//
// A digest is read two bits at a time; every pair moves a bishop one
// diagonal step on a 17×9 board, and the number of times each cell is
// visited picks its symbol.
//
//	+-----------------+
//	|                 |
//	|       o         |
//	|      . X . E    |
//	|       0 + =     |
//	|      o S + *    |
//	|     .   . =     |
//	|                 |
//	|                 |
//	|                 |
//	+-----------------+
//
// Under the hood, everything is organized under a few subpackages:
//
//	step/      — bytes → diagonal directions
//	board/     — grid geometry, row-major indices and edge clamping
//	bishop/    — configuration, the walk, visit counts and rendering
//	fixture/   — recorded renderings (JSON/YAML) for regression checks
//	cmd/bishop — command-line front end
//
//	go install github.com/katalvlaran/bishopart/cmd/bishop@latest
package bishopart
