package domain

import (
	"regexp"
	"strings"

	m "github.com/Anti-Raid/luau-lsp/internal/model"
	"github.com/Anti-Raid/luau-lsp/pkg"
)

const (
	pragmaPrefix = "@pragma"

	// EntrypointName is the name given to anonymous functions.
	EntrypointName = "__antiraid_ep"

	// AnyFunctionName is the identity function every rewritten require calls.
	AnyFunctionName = "__antiraidAny"

	// TypePrefix prefixes the type annotation of a rewritten require.
	TypePrefix = "__LSP_AntiRaid"

	// Trailer defines AnyFunctionName. It is appended to every normalized
	// source.
	Trailer = "\nfunction " + AnyFunctionName + "(s: string): any\nreturn s\nend"
)

var (
	// RE2 leaves \v out of \s, so the classes below spell it out.
	anonymousFunctionRegex = regexp.MustCompile(`function[\s\v]*\(([^)]*)\)`)
	requireRegex           = regexp.MustCompile(`local[\s\v]+([^\s\v]+)[\s\v]*=[\s\v]*require[\s\v]+"@antiraid/([^\s\v]+)"`)
	requireCallRegex       = regexp.MustCompile(`local[\s\v]+([^\s\v]+)[\s\v]*=[\s\v]*require[\s\v]*\("@antiraid/([^\s\v]+)"\)`)
)

// NormalizeAntiraid rewrites AntiRaid flavoured Luau into plain Luau the
// analyzer understands. See Normalize.
func NormalizeAntiraid(src string) string {
	out, _ := Normalize(src)
	return out
}

// Normalize applies, in order:
//
//  1. removal of a leading @pragma line (up to, not including, the newline;
//     the whole text when there is no newline),
//  2. renaming of every `function(args)` to `function __antiraid_ep(args)`,
//  3. rewriting of `local x = require "@antiraid/name"`,
//  4. rewriting of `local x = require("@antiraid/name")`,
//  5. appending Trailer.
//
// Requires become `local x: __LSP_AntiRaidNAME = __antiraidAny("NAME")` with
// the module name upper-cased. Normalize never fails; text that does not match
// a rule passes through.
func Normalize(src string) (string, m.NormalizeStats) {
	var stats m.NormalizeStats

	out := src

	if len(out) > len(pragmaPrefix)+1 && pkg.StartsWith(out, pragmaPrefix) {
		if eol := strings.IndexByte(out, '\n'); eol >= 0 {
			out = out[eol:]
		} else {
			out = ""
		}

		stats.PragmaStripped = true
	}

	stats.Functions = len(anonymousFunctionRegex.FindAllStringIndex(out, -1))
	out = anonymousFunctionRegex.ReplaceAllString(out, "function "+EntrypointName+"(${1})")

	out, stats.Requires = rewriteRequires(out, requireRegex, &stats.Modules)
	out, stats.RequireCalls = rewriteRequires(out, requireCallRegex, &stats.Modules)

	return out + Trailer, stats
}

// rewriteRequires replaces the first match of re and searches again from the
// start until nothing matches. The replacement never matches re again.
func rewriteRequires(src string, re *regexp.Regexp, modules *[]string) (string, int) {
	count := 0

	for {
		loc := re.FindStringSubmatchIndex(src)
		if loc == nil {
			return src, count
		}

		ident := src[loc[2]:loc[3]]
		name := pkg.ToUpper(src[loc[4]:loc[5]])

		// The leftmost match is also the first occurrence of its text.
		src, _ = pkg.Replace(src, src[loc[0]:loc[1]], requireReplacement(ident, name))
		*modules = append(*modules, name)
		count++
	}
}

func requireReplacement(ident, name string) string {
	return "local " + ident + ": " + TypePrefix + name + " = " + AnyFunctionName + `("` + name + `")`
}
