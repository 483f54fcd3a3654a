// SPDX-License-Identifier: EPL-2.0

package mixer

// currentVolume is the gain applied to the instance's raw samples when
// elapsedMs milliseconds of the current iteration have played.
//
// The attack ramp runs over the first attackMs, the falloff over the last
// falloffMs of the iteration. A zero time or CurveNone disables a phase.
// master and category are the group levels already resolved from the
// per-pass volume snapshot.
func (in *instance) currentVolume(elapsedMs, sampleRate, master, category float64) float64 {
	v := in.volume

	if in.attackMs > 0 && in.attackCurve != CurveNone && elapsedMs < in.attackMs {
		v *= Ease(in.attackCurve, elapsedMs/in.attackMs)
	}

	if in.falloffMs > 0 && in.falloffCurve != CurveNone {
		totalMs := float64(in.frames) * 1000 / sampleRate
		start := totalMs - in.falloffMs
		if elapsedMs > start {
			v *= 1 - Ease(in.falloffCurve, (elapsedMs-start)/in.falloffMs)
		}
	}

	return v * master * category
}
