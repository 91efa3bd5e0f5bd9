package config

import (
	"os"
	"time"

	"github.com/epistat/casetrend/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Snapshot holds the location of the input snapshot file
type Snapshot struct {
	Path string
}

// Flags returns CLI flags for Snapshot configuration
func (s *Snapshot) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "snapshot",
			Usage:       "Path to the YAML snapshot of daily and weekly case records",
			Sources:     cli.EnvVars("CASETREND_SNAPSHOT"),
			Destination: &s.Path,
			Required:    true,
		},
	}
}

// Configure loads the configured snapshot file
func (s *Snapshot) Configure() ([]model.DailyRecord, []model.WeeklyRecord, error) {
	return LoadSnapshotFromFile(s.Path)
}

// snapshotFile is the on-disk shape of a snapshot. Dates are plain
// "2006-01-02" strings and are validated here, before any record is
// constructed; the aggregation engine assumes pre-validated dates.
type snapshotFile struct {
	Daily []struct {
		Date     string `yaml:"date"`
		Subtotal *int   `yaml:"subtotal"`
	} `yaml:"daily"`
	Weekly []struct {
		StartDate string `yaml:"start_date"`
		EndDate   string `yaml:"end_date"`
		Subtotal  int    `yaml:"subtotal"`
	} `yaml:"weekly"`
}

// LoadSnapshotFromFile loads daily and weekly records from a YAML file
func LoadSnapshotFromFile(path string) ([]model.DailyRecord, []model.WeeklyRecord, error) {
	if path == "" {
		return nil, nil, goerr.New("snapshot file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, goerr.Wrap(model.ErrSnapshotNotFound, "failed to open snapshot",
				goerr.V("path", path))
		}
		return nil, nil, goerr.Wrap(err, "failed to read snapshot file",
			goerr.V("path", path))
	}

	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to parse snapshot YAML",
			goerr.V("path", path))
	}

	daily := make([]model.DailyRecord, 0, len(file.Daily))
	for i, rec := range file.Daily {
		date, err := parseDay(rec.Date)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "invalid daily record date",
				goerr.V("index", i))
		}
		daily = append(daily, model.DailyRecord{
			Date:     date,
			Subtotal: rec.Subtotal,
		})
	}

	weekly := make([]model.WeeklyRecord, 0, len(file.Weekly))
	for i, rec := range file.Weekly {
		start, err := parseDay(rec.StartDate)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "invalid weekly record start date",
				goerr.V("index", i))
		}
		end, err := parseDay(rec.EndDate)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "invalid weekly record end date",
				goerr.V("index", i))
		}
		weekly = append(weekly, model.WeeklyRecord{
			StartDate: start,
			EndDate:   end,
			Subtotal:  rec.Subtotal,
		})
	}

	return daily, weekly, nil
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "unparseable calendar date",
			goerr.V("date", s))
	}
	return t, nil
}
