// Package directory provides the read-only user and pre-approver set lookup
// the workflow engine consults. Data comes from a YAML seed, either the one
// built into the binary or a file named in config.
package directory

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"request-approvals/internal/entities"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Directory resolves users and pre-approver sets.
type Directory interface {
	User(ctx context.Context, id string) (entities.User, error)
	Approvers(ctx context.Context) ([]entities.User, error)
	PreApproverSets(ctx context.Context, requestType string) ([]entities.PreApproverSet, error)
	PreApproverSet(ctx context.Context, id string) (entities.PreApproverSet, error)
}

type seed struct {
	Users           []entities.User           `yaml:"users"`
	PreApproverSets []entities.PreApproverSet `yaml:"pre_approver_sets"`
}

// Static is an immutable Directory loaded once at startup.
type Static struct {
	users   []entities.User
	byID    map[string]int
	sets    []entities.PreApproverSet
	setByID map[string]int
}

// Load reads the seed at path, or the built-in seed when path is empty.
func Load(path string, log *zap.SugaredLogger) (*Static, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read directory file: %w", err)
		}
		data = b
	}
	d, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Named("directory").Infow("directory loaded",
		"file", path,
		"users", len(d.users),
		"pre_approver_sets", len(d.sets),
	)
	return d, nil
}

// Parse builds a directory from YAML seed data.
func Parse(data []byte) (*Static, error) {
	var s seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse directory: %w", err)
	}

	d := &Static{
		users:   s.Users,
		byID:    make(map[string]int, len(s.Users)),
		sets:    s.PreApproverSets,
		setByID: make(map[string]int, len(s.PreApproverSets)),
	}
	for i, u := range s.Users {
		if u.ID == "" {
			return nil, fmt.Errorf("parse directory: user #%d has no id", i)
		}
		if _, dup := d.byID[u.ID]; dup {
			return nil, fmt.Errorf("parse directory: duplicate user %s", u.ID)
		}
		d.byID[u.ID] = i
	}
	for i, set := range s.PreApproverSets {
		if _, dup := d.setByID[set.ID]; dup || set.ID == "" {
			return nil, fmt.Errorf("parse directory: bad pre-approver set id %q", set.ID)
		}
		for j, ap := range set.Approvers {
			u, ok := d.byID[ap.UserID]
			if !ok {
				return nil, fmt.Errorf("parse directory: set %s references unknown user %s", set.ID, ap.UserID)
			}
			d.sets[i].Approvers[j] = Complete(ap, d.users[u])
		}
		d.setByID[set.ID] = i
	}
	return d, nil
}

// User returns the user with the given id.
func (d *Static) User(_ context.Context, id string) (entities.User, error) {
	i, ok := d.byID[id]
	if !ok {
		return entities.User{}, fmt.Errorf("%w: %s", entities.ErrUserNotFound, id)
	}
	return d.users[i], nil
}

// Approvers returns the users flagged as approvers.
func (d *Static) Approvers(_ context.Context) ([]entities.User, error) {
	out := make([]entities.User, 0, len(d.users))
	for _, u := range d.users {
		if u.IsApprover {
			out = append(out, u)
		}
	}
	return out, nil
}

// PreApproverSets returns the sets for requestType, or all sets when it is empty.
func (d *Static) PreApproverSets(_ context.Context, requestType string) ([]entities.PreApproverSet, error) {
	out := make([]entities.PreApproverSet, 0, len(d.sets))
	for _, s := range d.sets {
		if requestType == "" || s.RequestType == requestType {
			out = append(out, cloneSet(s))
		}
	}
	return out, nil
}

// PreApproverSet returns a set by id.
func (d *Static) PreApproverSet(_ context.Context, id string) (entities.PreApproverSet, error) {
	i, ok := d.setByID[id]
	if !ok {
		return entities.PreApproverSet{}, fmt.Errorf("%w: %s", entities.ErrPreApproverSetNotFound, id)
	}
	return cloneSet(d.sets[i]), nil
}

// Complete fills in the display snapshot of ap from the user entry.
// Fields already set on ap win.
func Complete(ap entities.Approver, u entities.User) entities.Approver {
	if ap.UserName == "" {
		ap.UserName = u.Name
	}
	if ap.UserAvatar == "" {
		ap.UserAvatar = u.Avatar
	}
	if ap.UserPosition == "" {
		ap.UserPosition = u.AsRequester().Position
	}
	return ap
}

func cloneSet(s entities.PreApproverSet) entities.PreApproverSet {
	out := s
	out.Approvers = make([]entities.Approver, len(s.Approvers))
	copy(out.Approvers, s.Approvers)
	return out
}
