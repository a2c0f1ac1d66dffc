/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package epistemic

import (
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/epistemic/models"
)

// TakeSnapshot renders the registry's current contents, stores and records
// sorted by name.
func TakeSnapshot(reg *Registry) models.Snapshot {
	snap := models.Snapshot{
		GeneratedAt: strfmt.DateTime(time.Now().UTC()),
		State:       reg.State().String(),
	}
	for _, name := range reg.Stores() {
		s, ok := reg.Store(name)
		if !ok {
			continue
		}
		snap.Stores = append(snap.Stores, models.StoreSnapshot{
			Name:    name,
			Records: s.Records(),
		})
	}
	return snap
}
