package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/qri-io/jsonschema"
	"github.com/ula-apps/appstartup/core/entities"
)

var ErrAppNotFound = errors.New("app not found in catalog")

func keyError(errs []jsonschema.KeyError) error {
	s := strings.Builder{}
	for _, e := range errs {
		s.WriteString(fmt.Sprintf("%s\n", e.Error()))
	}
	return errors.New(s.String())
}

// Catalog lists the apps that can be started, as described by an apps.json file.
type Catalog struct {
	apps map[string]entities.App
}

type catalogFile struct {
	Apps []entities.App `json:"apps"`
}

func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading apps catalog: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw against the catalog schema before decoding it.
func Parse(raw []byte) (*Catalog, error) {
	rs := &jsonschema.Schema{}
	err := json.Unmarshal(catalogSchema, rs)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON schema: %s", err)
	}
	keyErrs, err := rs.ValidateBytes(context.Background(), raw)
	if err != nil {
		return nil, fmt.Errorf("error validating apps catalog: %s", err)
	}
	if len(keyErrs) != 0 {
		return nil, fmt.Errorf("invalid apps catalog: %w", keyError(keyErrs))
	}

	var file catalogFile
	err = json.Unmarshal(raw, &file)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		apps: make(map[string]entities.App),
	}
	for _, app := range file.Apps {
		if _, ok := c.apps[app.Name]; ok {
			return nil, fmt.Errorf("app %s is listed more than once", app.Name)
		}
		c.apps[app.Name] = app
	}
	return c, nil
}

func (c *Catalog) App(name string) (entities.App, error) {
	app, ok := c.apps[name]
	if !ok {
		return entities.App{}, fmt.Errorf("%w: %s", ErrAppNotFound, name)
	}
	return app, nil
}

// Apps returns every app sorted by name.
func (c *Catalog) Apps() []entities.App {
	apps := make([]entities.App, 0, len(c.apps))
	for _, app := range c.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].Name < apps[j].Name
	})
	return apps
}

// Distributions returns the filesystem types required by at least one app.
func (c *Catalog) Distributions() []string {
	seen := make(map[string]struct{})
	distributions := make([]string, 0)
	for _, app := range c.apps {
		if _, ok := seen[app.FilesystemRequired]; ok {
			continue
		}
		seen[app.FilesystemRequired] = struct{}{}
		distributions = append(distributions, app.FilesystemRequired)
	}
	sort.Strings(distributions)
	return distributions
}
