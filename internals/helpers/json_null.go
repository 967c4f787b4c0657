package helper

import (
	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
)

// NullKeys mengembalikan key top-level yang dikirim eksplisit sebagai null
// (BodyParser membuat null dan key yang tidak dikirim sama-sama nil).
func NullKeys(body []byte, keys ...string) map[string]bool {
	out := make(map[string]bool)
	if len(body) == 0 {
		return out
	}
	for _, k := range keys {
		node, err := sonic.Get(body, k)
		if err == nil && node.TypeSafe() == ast.V_NULL {
			out[k] = true
		}
	}
	return out
}
