// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
)

// Variables set for every script run.
const (
	// EnvCommand holds the space-separated identifiers of the matched chain.
	EnvCommand = "CMDTREE_COMMAND"
	// EnvInput holds the complete input line.
	EnvInput = "CMDTREE_INPUT"
	// EnvArgCount holds the number of positional arguments.
	EnvArgCount = "ARGC"
)

// buildScriptEnv layers, from lowest to highest precedence: the host
// environment (when inherited), the runtime's extra variables, then the
// per-invocation variables and ARG1..ARGn.
func (r *VirtualRuntime) buildScriptEnv(inv *cmdtree.Invocation, args []string) map[string]string {
	env := make(map[string]string)
	if r.inheritEnv {
		for _, kv := range os.Environ() {
			if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
				env[k] = v
			}
		}
	}
	maps.Copy(env, r.extraEnv)

	if inv.Chain != nil {
		env[EnvCommand] = strings.Join(inv.Chain.Identifiers(), " ")
	}
	if inv.Cursor != nil {
		env[EnvInput] = inv.Cursor.Text()
	}
	env[EnvArgCount] = strconv.Itoa(len(args))
	for i, arg := range args {
		env[fmt.Sprintf("ARG%d", i+1)] = arg
	}
	return env
}

// envToSlice renders env as sorted KEY=VALUE pairs.
func envToSlice(env map[string]string) []string {
	keys := slices.Sorted(maps.Keys(env))
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k + "=" + env[k]
	}
	return out
}
