// Package forms keeps the dress edit forms that are open in the admin screen.
// A form is a draft that only reaches the catalog when it is saved; generated
// descriptions land in the draft, and only if the request that produced them
// is still the form's current one.
package forms

import (
	"context"
	"dress-rental-service/internal/describe"
	"dress-rental-service/internal/model"
	"dress-rental-service/internal/store"
	"dress-rental-service/prometheus"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrFormNotFound       = errors.New("form not found")
	ErrGenerationInFlight = errors.New("description generation already in progress")
)

// Catalog is the part of the catalog store a form saves into
type Catalog interface {
	GetDress(id string) (model.Dress, bool)
	AddDress(draft model.DressDraft) (model.Dress, error)
	UpdateDress(id string, patch model.DressPatch) (model.Dress, error)
}

// Describer writes marketing copy; see describe.Describer
type Describer interface {
	Describe(ctx context.Context, name, color, category string) (string, error)
}

// Form is a snapshot of an open form
type Form struct {
	ID         string           `json:"id"`
	DressID    string           `json:"dressId,omitempty"`
	Draft      model.DressDraft `json:"draft"`
	Generating bool             `json:"generating"`
}

type form struct {
	Form
	token   uint64
	cancel  context.CancelFunc
	touched time.Time
}

// Registry holds the open forms
type Registry struct {
	mu        sync.Mutex
	forms     map[string]*form
	catalog   Catalog
	describer Describer
	timeout   time.Duration
	metrics   *prometheus.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewRegistry creates an empty registry. timeout bounds each generation.
func NewRegistry(catalog Catalog, describer Describer, timeout time.Duration, metrics *prometheus.Metrics, logger *zap.Logger) *Registry {
	return &Registry{
		forms:     make(map[string]*form),
		catalog:   catalog,
		describer: describer,
		timeout:   timeout,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// NewDressDraft is the blank new-dress form with a random placeholder image
func NewDressDraft() model.DressDraft {
	return model.DressDraft{
		Price:    decimal.Zero,
		Color:    "Black",
		Size:     "S",
		Category: model.CategoryEvening,
		Image:    "https://picsum.photos/seed/" + uuid.New().String() + "/800/1200",
	}
}

// OpenNew opens a form for a dress that does not exist yet
func (r *Registry) OpenNew() Form {
	return r.open(form{Form: Form{Draft: NewDressDraft()}})
}

// OpenEdit opens a form pre-filled with an existing dress
func (r *Registry) OpenEdit(dressID string) (Form, error) {
	dress, ok := r.catalog.GetDress(dressID)
	if !ok {
		return Form{}, store.ErrDressNotFound
	}
	return r.open(form{Form: Form{DressID: dress.ID, Draft: dress.Draft()}}), nil
}

func (r *Registry) open(f form) Form {
	f.ID = uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()
	f.touched = r.now()
	r.forms[f.ID] = &f
	r.metrics.SetOpenForms(len(r.forms))
	return f.Form
}

// Get returns the current state of a form
func (r *Registry) Get(id string) (Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.forms[id]
	if !ok {
		return Form{}, ErrFormNotFound
	}
	f.touched = r.now()
	return f.Form, nil
}

// Update merges patch onto the form's draft
func (r *Registry) Update(id string, patch model.DressPatch) (Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.forms[id]
	if !ok {
		return Form{}, ErrFormNotFound
	}
	f.Draft = patch.ApplyDraft(f.Draft)
	f.touched = r.now()
	return f.Form, nil
}

// Dismiss closes the form and drops any generation still running for it
func (r *Registry) Dismiss(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.forms[id]
	if !ok {
		return ErrFormNotFound
	}
	r.closeLocked(f)
	return nil
}

// Save writes the draft to the catalog: a new dress, or a merge onto the
// edited one. The form stays open when the catalog refuses the draft.
func (r *Registry) Save(id string) (model.Dress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.forms[id]
	if !ok {
		return model.Dress{}, ErrFormNotFound
	}

	var (
		dress model.Dress
		err   error
	)
	if f.DressID != "" {
		dress, err = r.catalog.UpdateDress(f.DressID, f.Draft.Patch())
	} else {
		dress, err = r.catalog.AddDress(f.Draft)
	}
	if err != nil {
		return model.Dress{}, err
	}

	r.closeLocked(f)
	return dress, nil
}

func (r *Registry) closeLocked(f *form) {
	if f.cancel != nil {
		f.cancel()
	}
	delete(r.forms, f.ID)
	r.metrics.SetOpenForms(len(r.forms))
}

// Sweep closes every form untouched for longer than maxIdle, cancelling its
// generation, and returns how many it closed
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	closed := 0
	for _, f := range r.forms {
		if f.touched.Before(cutoff) {
			r.closeLocked(f)
			closed++
		}
	}
	return closed
}

// RunJanitor sweeps idle forms every interval until ctx is done
func (r *Registry) RunJanitor(ctx context.Context, maxIdle, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(maxIdle); n > 0 {
				r.logger.Info("Closed idle forms", zap.Int("count", n))
			}
		}
	}
}

// Count returns the number of open forms
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// GenerateDescription starts generating a description for the form's draft in
// the background. Only one generation per form runs at a time. The returned
// channel is closed once the result has been applied or discarded.
func (r *Registry) GenerateDescription(id string) (<-chan struct{}, error) {
	r.mu.Lock()
	f, ok := r.forms[id]
	if !ok {
		r.mu.Unlock()
		return nil, ErrFormNotFound
	}
	if f.Generating {
		r.mu.Unlock()
		return nil, ErrGenerationInFlight
	}
	d := f.Draft
	if d.Name == "" || d.Color == "" || d.Category == "" {
		r.mu.Unlock()
		return nil, describe.ErrIncompleteDress
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if r.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), r.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	f.token++
	f.touched = r.now()
	f.Generating = true
	f.cancel = cancel
	token := f.token
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()

		text, err := r.describer.Describe(ctx, d.Name, d.Color, string(d.Category))
		r.applyDescription(id, token, text, err)
	}()
	return done, nil
}

func (r *Registry) applyDescription(id string, token uint64, text string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.forms[id]
	if !ok || f.token != token {
		r.logger.Debug("Discarding description for closed or superseded form",
			zap.String("form_id", id))
		return
	}

	f.Generating = false
	f.cancel = nil
	if err != nil {
		r.logger.Warn("Description not applied", zap.String("form_id", id), zap.Error(err))
		return
	}
	f.Draft.Description = text
}
