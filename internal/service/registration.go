package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

// ErrUnknownCampus indicates a campus with no registration prefix.
var ErrUnknownCampus = errors.New("unknown campus")

// RegistrationAllocator issues registration numbers of the form
// <prefix><yy><seq>, e.g. ICBR24001: a four letter campus prefix, the two
// digit admission year and a three digit sequence that restarts every year
// per campus.
type RegistrationAllocator struct {
	students repository.StudentRepository
	now      func() time.Time
}

// NewRegistrationAllocator constructs an allocator over the student store.
func NewRegistrationAllocator(students repository.StudentRepository) *RegistrationAllocator {
	return &RegistrationAllocator{students: students, now: time.Now}
}

// NewBatch opens an allocation session. Numbers handed out within one batch
// never collide with each other or with stored students; the campus sequence
// is scanned once per batch and advanced in memory afterwards.
func (a *RegistrationAllocator) NewBatch() *RegistrationBatch {
	return &RegistrationBatch{allocator: a, next: make(map[models.Campus]int)}
}

// RegistrationBatch tracks in-progress sequence numbers for one allocation
// session. Not safe for concurrent use.
type RegistrationBatch struct {
	allocator *RegistrationAllocator
	next      map[models.Campus]int
}

// Next returns the next registration number for the campus.
func (b *RegistrationBatch) Next(ctx context.Context, campus models.Campus) (string, error) {
	if !campus.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownCampus, campus)
	}

	yearPrefix := campus.Prefix() + b.allocator.now().Format("06")

	seq, ok := b.next[campus]
	if !ok {
		existing, err := b.allocator.students.ListRegistrationNumbers(ctx, yearPrefix)
		if err != nil {
			return "", err
		}
		seq = highestSequence(existing, yearPrefix) + 1
	}

	b.next[campus] = seq + 1
	return fmt.Sprintf("%s%03d", yearPrefix, seq), nil
}

// highestSequence extracts the largest numeric suffix among registration
// numbers sharing the campus+year prefix. Malformed suffixes are skipped.
func highestSequence(numbers []string, yearPrefix string) int {
	highest := 0
	for _, number := range numbers {
		suffix := strings.TrimPrefix(number, yearPrefix)
		if suffix == number || suffix == "" {
			continue
		}
		seq, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if seq > highest {
			highest = seq
		}
	}
	return highest
}
