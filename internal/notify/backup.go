package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sanaresoma/sanaresoma-backend/internal/activity"
	"github.com/sanaresoma/sanaresoma-backend/internal/client"
	"github.com/sanaresoma/sanaresoma-backend/internal/food"
	"github.com/sanaresoma/sanaresoma-backend/internal/goal"
	"github.com/sanaresoma/sanaresoma-backend/internal/meal"
	"github.com/sanaresoma/sanaresoma-backend/internal/nutrition"
	"github.com/sanaresoma/sanaresoma-backend/internal/professional"
	"github.com/sanaresoma/sanaresoma-backend/internal/routine"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

var ErrNoArchive = errors.New("no backup archive configured")

// Archive stores files produced by tasks.
type Archive interface {
	Write(ctx context.Context, name string, data []byte) error
}

// DirArchive writes files into a local directory, creating it on first use.
type DirArchive struct {
	dir string
}

func NewDirArchive(dir string) *DirArchive {
	return &DirArchive{dir: dir}
}

func (a *DirArchive) Write(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(a.dir, filepath.Base(name)), data, 0o600)
}

type backupDump struct {
	Users         []user.User                 `json:"users"`
	Professionals []professional.Professional `json:"professionals"`
	Goals         []goal.Goal                 `json:"goals"`
	Activities    []activity.Activity         `json:"activities"`
	Routines      []routine.Routine           `json:"routines"`
	Foods         []food.Food                 `json:"foods"`
	Meals         []meal.Meal                 `json:"meals"`
	Nutritions    []nutrition.Nutrition       `json:"nutritions"`
	Clients       []client.Client             `json:"clients"`
}

func backupDatabase(in Input) (Output, error) {
	s := in.Snap
	data, err := json.MarshalIndent(backupDump{
		Users:         s.Users,
		Professionals: s.Professionals,
		Goals:         s.Goals,
		Activities:    s.Activities,
		Routines:      s.Routines,
		Foods:         s.Foods,
		Meals:         s.Meals,
		Nutritions:    s.Nutritions,
		Clients:       s.Clients,
	}, "", "  ")
	if err != nil {
		return Output{}, fmt.Errorf("encode backup: %w", err)
	}
	name := fmt.Sprintf("db_backup_%s.json", in.Now.Format("20060102150405"))
	return Output{
		Files: []File{{Name: name, Data: data}},
		Note:  "database backup saved to " + name,
	}, nil
}
