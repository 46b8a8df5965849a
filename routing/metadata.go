package routing

import (
	"reflect"
	"sync"
)

// metadataKey names one concern stored in the registry for a given target.
type metadataKey string

const (
	keyMountPath  metadataKey = "mount-path"
	keyMiddleware metadataKey = "middleware"
	keyRoute      metadataKey = "route"
)

// attachmentKey identifies one (declaring type, member, concern) triple.
// An empty member addresses the controller type itself.
type attachmentKey struct {
	target reflect.Type
	member string
	key    metadataKey
}

// registry is the process-wide metadata side table. It is written to by the
// annotation builders at registration time (before any serving starts) and
// read by the composer; at most one value exists per triple and later writes
// overwrite earlier ones.
type registry struct {
	mu      sync.RWMutex
	entries map[attachmentKey]any
}

// metadata is the single process-wide registry instance.
var metadata = &registry{entries: make(map[attachmentKey]any)}

// targetType normalizes a target value to its declaring struct type,
// indirecting through any number of pointers. Returns nil for targets that
// do not resolve to a struct type.
func targetType(target any) reflect.Type {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

func (r *registry) attach(target any, member string, key metadataKey, value any) {
	t := targetType(target)
	if t == nil {
		panic("routing: annotation target must be a struct or pointer to struct")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[attachmentKey{target: t, member: member, key: key}] = value
}

// resolve looks up the value attached for (target, member, key).
//
// Lookups walk the embedded-struct chain breadth-first, mirroring Go's method
// promotion order: metadata attached against a base controller resolves
// through any type that embeds it, and a declaration on the embedding type
// shadows the one on the base. The walk covers both member metadata (a
// promoted handler keeps the binding declared on its base) and type-level
// metadata (an embedding controller inherits mount path and middleware until
// it declares its own).
func (r *registry) resolve(target any, member string, key metadataKey) (any, bool) {
	t := targetType(target)
	if t == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	queue := []reflect.Type{t}
	seen := make(map[reflect.Type]bool)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if seen[cur] {
			continue
		}
		seen[cur] = true

		if v, ok := r.entries[attachmentKey{target: cur, member: member, key: key}]; ok {
			return v, true
		}

		for i := 0; i < cur.NumField(); i++ {
			field := cur.Field(i)
			if !field.Anonymous {
				continue
			}
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				queue = append(queue, ft)
			}
		}
	}

	return nil, false
}
