package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/gofrs/flock"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	DefaultLockTimeout = 5 * time.Second
	lockRetryDelay     = 10 * time.Millisecond
	maxLineSize        = 1024 * 1024
)

// RecordFile is an append-only JSON lines file of access records. Writers
// take an exclusive lock on <path>.lock and readers a shared one, so several
// processes may share the file.
type RecordFile struct {
	path        string
	file        *os.File
	lock        *flock.Flock
	lockTimeout time.Duration
	logger      *logrus.Logger
	mu          sync.Mutex
	closed      bool
	done        chan struct{}
}

func NewRecordFile(path string, lockTimeout time.Duration, logger *logrus.Logger) (*RecordFile, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	if logger == nil {
		logger = logrus.New()
	}

	rf := &RecordFile{
		path:        path,
		file:        f,
		lock:        flock.New(path + ".lock"),
		lockTimeout: lockTimeout,
		logger:      logger,
		done:        make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rf.mu.Lock()
				if !rf.closed {
					rf.file.Sync()
				}
				rf.mu.Unlock()
			case <-rf.done:
				return
			}
		}
	}()

	return rf, nil
}

func (rf *RecordFile) Path() string {
	return rf.path
}

func (rf *RecordFile) Close() error {
	rf.mu.Lock()
	defer rf.mu.Unlock()
	if rf.closed {
		return nil
	}
	rf.closed = true
	close(rf.done)
	return rf.file.Close()
}

func (rf *RecordFile) Append(ctx context.Context, rec models.AccessRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	rf.mu.Lock()
	defer rf.mu.Unlock()
	if rf.closed {
		return models.ErrStoreClosed
	}

	unlock, err := rf.acquire(ctx, false)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := rf.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

// Read calls fn for every stored record in file order. Lines that cannot be
// decoded are logged and skipped. An error from fn stops the scan and is
// returned as is.
func (rf *RecordFile) Read(ctx context.Context, fn func(models.AccessRecord) error) error {
	rf.mu.Lock()
	defer rf.mu.Unlock()
	if rf.closed {
		return models.ErrStoreClosed
	}

	unlock, err := rf.acquire(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()

	_, err = rf.scan(ctx, fn)
	return err
}

// Purge removes records accessed before the cutoff. A zero cutoff matches
// every record; an empty env matches every environment. It returns the number
// of removed records.
func (rf *RecordFile) Purge(ctx context.Context, before time.Time, env string) (int, error) {
	rf.mu.Lock()
	defer rf.mu.Unlock()
	if rf.closed {
		return 0, models.ErrStoreClosed
	}

	unlock, err := rf.acquire(ctx, false)
	if err != nil {
		return 0, err
	}
	defer unlock()

	var kept []models.AccessRecord
	removed := 0
	_, err = rf.scan(ctx, func(rec models.AccessRecord) error {
		if matchesPurge(rec, before, env) {
			removed++
			return nil
		}
		kept = append(kept, rec)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, nil
	}

	if err := rf.rewrite(kept); err != nil {
		return 0, err
	}

	rf.logger.WithFields(logrus.Fields{
		"path":    rf.path,
		"removed": removed,
		"kept":    len(kept),
	}).Info("Purged access records")
	return removed, nil
}

// rewrite replaces the record file with kept. The records go to <path>.tmp
// first, which is synced and renamed over the file, so a failure leaves the
// old file in place.
func (rf *RecordFile) rewrite(kept []models.AccessRecord) error {
	tmpPath := rf.path + ".tmp"
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create temporary record file: %w", err)
	}
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range kept {
		line, err := json.Marshal(rec)
		if err != nil {
			return fail(fmt.Errorf("encode record: %w", err))
		}
		if _, err := w.Write(line); err != nil {
			return fail(fmt.Errorf("write temporary record file: %w", err))
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail(fmt.Errorf("write temporary record file: %w", err))
		}
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("write temporary record file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("sync temporary record file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temporary record file: %w", err)
	}
	if err := os.Rename(tmpPath, rf.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace record file: %w", err)
	}

	f, err := os.OpenFile(rf.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("reopen record file: %w", err)
	}
	if err := rf.file.Close(); err != nil {
		rf.logger.WithError(err).Warn("Failed to close replaced record file")
	}
	rf.file = f
	return nil
}

func matchesPurge(rec models.AccessRecord, before time.Time, env string) bool {
	if env != "" && rec.Env != env {
		return false
	}
	return before.IsZero() || rec.AccessedAt.Before(before)
}

func (rf *RecordFile) acquire(ctx context.Context, shared bool) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lockCtx, cancel := context.WithTimeout(ctx, rf.lockTimeout)
	defer cancel()

	var locked bool
	var err error
	if shared {
		locked, err = rf.lock.TryRLockContext(lockCtx, lockRetryDelay)
	} else {
		locked, err = rf.lock.TryLockContext(lockCtx, lockRetryDelay)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, models.ErrLockTimeout
		}
		return nil, fmt.Errorf("lock record file: %w", err)
	}
	if !locked {
		return nil, models.ErrLockTimeout
	}

	return func() {
		if err := rf.lock.Unlock(); err != nil {
			rf.logger.WithError(err).Warn("Failed to release record file lock")
		}
	}, nil
}

func (rf *RecordFile) scan(ctx context.Context, fn func(models.AccessRecord) error) (int, error) {
	reader, err := os.Open(rf.path)
	if err != nil {
		return 0, fmt.Errorf("open record file: %w", err)
	}
	defer reader.Close()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo, count := 0, 0
	for scanner.Scan() {
		lineNo++
		if lineNo%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		rec, err := decodeRecord(line)
		if err != nil {
			rf.logger.WithFields(logrus.Fields{
				"path": rf.path,
				"line": lineNo,
			}).WithError(err).Warn("Skipping unreadable access record")
			continue
		}
		if err := fn(rec); err != nil {
			return count, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("scan record file: %w", err)
	}
	return count, nil
}

func decodeRecord(line []byte) (models.AccessRecord, error) {
	if !gjson.ValidBytes(line) {
		return models.AccessRecord{}, fmt.Errorf("%w: malformed json", models.ErrInvalidRecord)
	}
	doc := gjson.ParseBytes(line)

	rec := models.AccessRecord{
		RequestID:  doc.Get("request_id").String(),
		Env:        doc.Get("env").String(),
		Route:      doc.Get("route").String(),
		HTTPMethod: doc.Get("http_method").String(),
	}
	if v := doc.Get("status_code"); v.Type == gjson.Number {
		rec.StatusCode = models.Int(int(v.Int()))
	}
	if v := doc.Get("response_time"); v.Type == gjson.Number {
		rec.ResponseTime = models.Float(v.Float())
	}
	if v := doc.Get("query_time"); v.Type == gjson.Number {
		rec.QueryTime = models.Float(v.Float())
	}
	if v := doc.Get("total_queries"); v.Type == gjson.Number {
		rec.TotalQueries = models.Int(int(v.Int()))
	}
	if v := doc.Get("memory_usage"); v.Type == gjson.Number {
		rec.MemoryUsage = models.Int64(v.Int())
	}
	if v := doc.Get("accessed_at"); v.Exists() && v.String() != "" {
		t, err := time.Parse(time.RFC3339Nano, v.String())
		if err != nil {
			return models.AccessRecord{}, fmt.Errorf("%w: accessed_at: %v", models.ErrInvalidRecord, err)
		}
		rec.AccessedAt = t
	}

	return rec, rec.Validate()
}
