package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. It leaks memory
// but generates the names lazily, so it's not a problem unless you're actually
// using it. Pointers get a name per identity, which makes it much easier to tell
// two triangles apart in a debug render than comparing coordinates.

var (
	memoLock sync.Mutex
	memo     = make(map[interface{}]string)
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	key := memoKey(obj)

	memoLock.Lock()
	defer memoLock.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Values that can't be map keys are named by their printed form instead. A
// comparable type can still hold an uncomparable value in an interface field,
// and that only shows up when hashing panics.
func memoKey(obj interface{}) (key interface{}) {
	if !reflect.TypeOf(obj).Comparable() {
		return fmt.Sprintf("%T%v", obj, obj)
	}
	defer func() {
		if recover() != nil {
			key = fmt.Sprintf("%T%v", obj, obj)
		}
	}()
	_ = map[interface{}]struct{}{obj: {}}
	return obj
}
