package telemetry

import (
	"time"

	"github.com/vango-dev/flux/pkg/component"
)

// Observers fans one mount notification out to several observers.
type Observers []component.MountObserver

// ObserveMount implements component.MountObserver.
func (o Observers) ObserveMount(name string, elapsed time.Duration, err error) {
	for _, obs := range o {
		if obs != nil {
			obs.ObserveMount(name, elapsed, err)
		}
	}
}
