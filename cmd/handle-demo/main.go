// Command handle-demo shows the ownership primitives driving real
// resources: a pebble database whose close runs on the last strong
// release, pooled record buffers recycled by their handles, and a
// unique temp-directory guard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cockroachdb/pebble"
	"github.com/sirupsen/logrus"

	"github.com/Timofon/Smart-pointers/pool"
	"github.com/Timofon/Smart-pointers/shared"
	"github.com/Timofon/Smart-pointers/unique"
)

type record struct {
	key []byte
	val []byte
}

func main() {
	dirFlag := flag.String("dir", "", "database directory (default: a temp dir, removed on exit)")
	count := flag.Int("n", 16, "number of records to write")
	flag.Parse()

	log := logrus.New()
	shared.SetLeakLogger(log)
	shared.EnableLeakTracking()

	// ---------------- Directory guard ----------------

	dir := *dirFlag
	var guard unique.Ptr[string, unique.DeleteFunc[string]]
	if dir == "" {
		tmp, err := os.MkdirTemp("", "handle-demo-*")
		if err != nil {
			log.Fatalf("temp dir: %v", err)
		}
		dir = tmp
		guard = unique.New(&dir, unique.DeleteFunc[string]{Fn: func(d *string) {
			log.WithField("dir", *d).Info("removing temp dir")
			os.RemoveAll(*d)
		}})
	}
	defer guard.Destroy()

	// ---------------- Database handle ----------------

	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		log.Fatalf("pebble open: %v", err)
	}
	handle := shared.FromPointerFunc(db, func(db *pebble.DB) {
		if err := db.Close(); err != nil {
			log.Errorf("pebble close: %v", err)
			return
		}
		log.Info("database closed by last handle")
	})

	// ---------------- Record buffers ----------------

	bufs := pool.New(1<<4,
		func() *record { return &record{} },
		func(r *record) { r.key, r.val = r.key[:0], r.val[:0] })

	// ---------------- Consumers ----------------

	// Each consumer receives its own owning handle and releases it
	// when done; whoever finishes last closes the database.
	if err := writeRecords(log, handle.Clone(), bufs, *count); err != nil {
		log.Fatalf("write: %v", err)
	}
	if err := readRecords(log, handle.Clone(), *count); err != nil {
		log.Fatalf("read: %v", err)
	}

	log.WithField("use_count", handle.UseCount()).Info("consumers done")
	handle.Release()

	// ---------------- Leak report ----------------

	if n := shared.ReportLeaks(); n != 0 {
		log.Warnf("%d control block(s) still alive", n)
		os.Exit(1)
	}
	log.Info("no leaks")
}

func writeRecords(log *logrus.Logger, db shared.Ptr[pebble.DB], bufs *pool.Pool[record], n int) error {
	defer db.Release()

	for i := 0; i < n; i++ {
		buf := bufs.Acquire()
		r := buf.Get()
		r.key = fmt.Appendf(r.key, "rec/%04d", i)
		r.val = fmt.Appendf(r.val, "value-%d", i)
		err := db.Get().Set(r.key, r.val, pebble.Sync)
		buf.Release()
		if err != nil {
			return fmt.Errorf("set %d: %w", i, err)
		}
	}
	log.WithFields(logrus.Fields{"records": n, "pooled": bufs.FreeLen()}).Info("write pass done")
	return nil
}

func readRecords(log *logrus.Logger, db shared.Ptr[pebble.DB], n int) error {
	defer db.Release()

	for i := 0; i < n; i++ {
		key := fmt.Appendf(nil, "rec/%04d", i)
		val, closer, err := db.Get().Get(key)
		if err != nil {
			return fmt.Errorf("get %q: %w", key, err)
		}
		if len(val) == 0 {
			closer.Close()
			return fmt.Errorf("get %q: empty value", key)
		}
		closer.Close()
	}
	log.WithField("records", n).Info("read pass done")
	return nil
}
