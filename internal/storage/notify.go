package storage

import (
	"context"
	"sync"
)

// Table names used for change notification.
const (
	tableUsers             = "users"
	tableExercises         = "exercises"
	tableWorkouts          = "workouts"
	tableWorkoutExercises  = "workout_exercises"
	tableWorkoutSets       = "workout_sets"
	tableWorkoutTemplates  = "workout_templates"
	tableTemplateExercises = "template_exercises"
	tableTemplateSets      = "template_sets"
)

// notifier fans table-change events out to live queries. Invalidation is
// table-granular: any committed write to a watched table re-runs the query.
type notifier struct {
	mu       sync.Mutex
	nextID   int
	watchers map[int]*watcher
}

type watcher struct {
	tables map[string]struct{}
	signal chan struct{}
}

func newNotifier() *notifier {
	return &notifier{watchers: make(map[int]*watcher)}
}

func (n *notifier) register(tables []string) (int, <-chan struct{}) {
	w := &watcher{
		tables: make(map[string]struct{}, len(tables)),
		signal: make(chan struct{}, 1),
	}
	for _, t := range tables {
		w.tables[t] = struct{}{}
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	n.watchers[id] = w
	return id, w.signal
}

func (n *notifier) unregister(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.watchers, id)
}

// broadcast signals every watcher interested in any of the given tables.
// The signal channel is capacity 1, so pending signals coalesce.
func (n *notifier) broadcast(tables ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, w := range n.watchers {
		for _, t := range tables {
			if _, ok := w.tables[t]; ok {
				select {
				case w.signal <- struct{}{}:
				default:
				}
				break
			}
		}
	}
}

// Subscription is a live query: C carries a snapshot of the full result set,
// first immediately and then again after every committed write to the
// underlying tables. Snapshots coalesce under a slow consumer, so delivery is
// eventually consistent with the last committed write rather than per-write.
// Callers must Close to release the subscription.
type Subscription[T any] struct {
	C <-chan []T

	cancel func()
	once   sync.Once
}

// Close cancels the subscription. C is closed once the worker drains.
func (s *Subscription[T]) Close() {
	s.once.Do(s.cancel)
}

// watch runs query now and after every change to tables, publishing snapshots
// until the subscription is closed. A query failure ends the stream.
func watch[T any](db *DB, tables []string, query func(context.Context) ([]T, error)) *Subscription[T] {
	ctx, cancel := context.WithCancel(context.Background())
	id, signal := db.notifier.register(tables)

	out := make(chan []T, 1)
	sub := &Subscription[T]{C: out, cancel: cancel}

	go func() {
		defer func() {
			db.notifier.unregister(id)
			close(out)
		}()
		for {
			rows, err := query(ctx)
			if err != nil {
				return
			}
			// Latest snapshot wins: drop a stale undelivered one.
			select {
			case <-out:
			default:
			}
			select {
			case out <- rows:
			case <-ctx.Done():
				return
			}
			select {
			case <-signal:
			case <-ctx.Done():
				return
			}
		}
	}()

	return sub
}
