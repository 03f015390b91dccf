package depverify

import "strings"

// pythonStdlib is the fixed set of top-level Python standard library
// module names. Not exhaustive of CPython's full stdlib, but covers
// the modules real source commonly imports.
var pythonStdlib = map[string]bool{
	"os": true, "sys": true, "json": true, "collections": true,
	"itertools": true, "functools": true, "typing": true, "re": true,
	"math": true, "random": true, "time": true, "datetime": true,
	"pathlib": true, "subprocess": true, "threading": true,
	"multiprocessing": true, "asyncio": true, "logging": true,
	"unittest": true, "io": true, "abc": true, "enum": true,
	"dataclasses": true, "contextlib": true, "copy": true, "csv": true,
	"hashlib": true, "http": true, "socket": true, "sqlite3": true,
	"string": true, "textwrap": true, "traceback": true, "uuid": true,
	"warnings": true, "weakref": true, "xml": true, "argparse": true,
	"base64": true, "collections.abc": true, "concurrent": true,
	"dis": true, "glob": true, "gzip": true, "inspect": true,
	"operator": true, "pickle": true, "platform": true, "pprint": true,
	"queue": true, "shutil": true, "signal": true, "struct": true,
	"tempfile": true, "urllib": true, "zipfile": true, "array": true,
	"bisect": true, "heapq": true, "decimal": true, "fractions": true,
	"statistics": true, "secrets": true, "selectors": true, "ssl": true,
	"stat": true, "tokenize": true, "types": true, "venv": true, "__future__": true,
}

// jsStdlib is the fixed set of Node.js built-in module names, matched
// with or without the "node:" prefix.
var jsStdlib = map[string]bool{
	"fs": true, "path": true, "http": true, "https": true, "net": true,
	"os": true, "util": true, "events": true, "stream": true,
	"crypto": true, "child_process": true, "cluster": true, "dns": true,
	"readline": true, "url": true, "querystring": true, "zlib": true,
	"assert": true, "buffer": true, "console": true, "process": true,
	"timers": true, "tls": true, "tty": true, "vm": true, "worker_threads": true,
	"perf_hooks": true, "async_hooks": true, "module": true, "repl": true,
}

// rustStdlib is the fixed set of Rust built-in crate roots.
var rustStdlib = map[string]bool{
	"std": true, "core": true, "alloc": true, "proc_macro": true, "test": true,
}

// IsStdlib reports whether canonical (an already-canonicalized import
// name, see Canonicalize) belongs to language's standard library or
// runtime. currentCrate is the importing Rust project's own crate
// name (empty if unknown/not Rust), since a crate may reference
// itself via its own identifier.
func IsStdlib(language, canonical, currentCrate string) bool {
	switch language {
	case "python":
		return setHasPrefixPath(pythonStdlib, canonical, '.')
	case "javascript", "typescript", "tsx":
		name := strings.TrimPrefix(canonical, "node:")
		return jsStdlib[name]
	case "go":
		first := canonical
		if i := strings.IndexByte(canonical, '/'); i >= 0 {
			first = canonical[:i]
		}
		return !strings.Contains(first, ".")
	case "rust":
		if currentCrate != "" && canonical == currentCrate {
			return true
		}
		return rustStdlib[canonical]
	default:
		return false
	}
}

// setHasPrefixPath reports whether name equals or is a dotted-prefix
// descendant of some entry in set.
func setHasPrefixPath(set map[string]bool, name string, sep byte) bool {
	if set[name] {
		return true
	}
	for i := 0; i < len(name); i++ {
		if name[i] == sep {
			if set[name[:i]] {
				return true
			}
		}
	}
	return false
}
