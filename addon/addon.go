/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

package addon

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/krotik/rkt/ast"
)

/*
Register populates program's Addons table with every add-on procedure
this interpreter ships, currently just string-sha256.
*/
func Register(program *ast.Node) {
	registerAdapted(program, "string-sha256", stringSHA256)
}

/*
registerAdapted wraps fn through a FunctionAdapter and installs it as a
fixed-arity, non-variadic add-on procedure.
*/
func registerAdapted(program *ast.Node, name string, fn interface{}) {
	adapter := NewFunctionAdapter(name, fn)
	program.Addons[name] = ast.NewNativeProcedure(name, adapter.Arity(), false, adapter.Run, ast.Addon)
}

/*
stringSHA256 returns the lower-case hex-encoded SHA-256 digest of s.
*/
func stringSHA256(s string) (string, error) {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:]), nil
}
