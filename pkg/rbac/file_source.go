package rbac

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// fileGrantSource loads the grant table from a YAML file of the form:
//
//	roles:
//	  broker_admin:
//	    employees: [create, read, update, delete]
//	    reports: [read, export, view_all]
type fileGrantSource struct {
	path string
}

// NewFileGrantSource creates a GrantSource that reads the role -> grants
// table from a YAML file at path. The file is re-read on every Load, so a
// catalog Reload picks up edits.
func NewFileGrantSource(path string) GrantSource {
	return &fileGrantSource{path: path}
}

type grantFile struct {
	Roles map[string]map[string][]string `yaml:"roles"`
}

// Load parses the file and validates every identifier against the closed
// sets. A single unrecognized role, resource or action fails the whole
// load; the catalog keeps serving its previous snapshot.
func (s *fileGrantSource) Load(ctx context.Context) (map[Role][]Grant, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read grant file: %w", err)
	}

	var doc grantFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse grant file %s: %w", s.path, err)
	}

	table := make(map[Role][]Grant, len(doc.Roles))
	for roleName, resources := range doc.Roles {
		role := ParseRole(roleName)
		if role == RoleUnknown {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownRole, roleName, s.path)
		}

		var grants []Grant
		// Sort resources for a deterministic grant order across loads.
		names := make([]string, 0, len(resources))
		for name := range resources {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			resource := ParseResource(name)
			if resource == ResourceUnknown {
				return nil, fmt.Errorf("%w: %q (role %s) in %s", ErrUnknownResource, name, roleName, s.path)
			}
			for _, actionName := range resources[name] {
				action := ParseAction(actionName)
				if action == ActionUnknown {
					return nil, fmt.Errorf("%w: %q (role %s, resource %s) in %s",
						ErrUnknownAction, actionName, roleName, name, s.path)
				}
				grants = append(grants, Grant{Resource: resource, Action: action})
			}
		}
		table[role] = grants
	}

	return table, nil
}
