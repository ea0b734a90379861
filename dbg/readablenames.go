package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys (shape ids, pointers) into random readable
// names. Ids are small integers that are easy to mix up in a long debugging
// session; "BraveOtter" and "QuietFalcon" are not. The names are memoized for
// the life of the process and never freed, which is fine for debugging output.

var (
	memo = make(map[interface{}]string)
	mu   sync.Mutex
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for key. Nil pointers get "Ø".
func Name(key interface{}) string {
	if key == nil || isNilPointer(key) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

func isNilPointer(key interface{}) bool {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
