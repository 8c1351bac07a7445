package deepfake

import "truthguard/internal/provider"

// Vote-guard thresholds, mirroring the numbered weighting rules embedded in
// the synthesizer prompts.
const (
	probeConsensusMin  = 0.70
	classifierQuietMax = 0.30
	classifierDecisive = 0.80
	uncertainBandLow   = 0.40
	uncertainBandHigh  = 0.55
)

// applyVoteGuard enforces the weighting rules deterministically on top of
// the synthesizer's reply. The model is trusted inside a clear majority;
// outside it the rules win:
//
//	rule 1: unanimous high probes with unanimously quiet classifiers is FAKE
//	        (the classifiers are known to false-negative on some media).
//	rule 2: one classifier at or above 0.80 is decisive for FAKE on its own.
//	rule 3: an even split across counted signals is always UNCERTAIN inside
//	        the 0.40-0.55 confidence band, never a confident verdict.
//
// Classifiers that returned UNCERTAIN are excluded from the tally entirely,
// not counted as neutral votes.
func applyVoteGuard(probes []ProbeFinding, classifiers []provider.Classification, isFake bool, confidence float64, reasoning string) (bool, float64, string, string) {
	var counted []provider.Classification
	for _, c := range classifiers {
		if c.Label != "UNCERTAIN" {
			counted = append(counted, c)
		}
	}

	// Rule 1.
	if len(counted) > 0 {
		allProbesHigh := len(probes) > 0
		for _, p := range probes {
			if p.Score < probeConsensusMin {
				allProbesHigh = false
				break
			}
		}
		allClassifiersQuiet := true
		for _, c := range counted {
			if c.Score >= classifierQuietMax {
				allClassifiersQuiet = false
				break
			}
		}
		if allProbesHigh && allClassifiersQuiet {
			conf := avgProbeScore(probes)
			if conf < confidence {
				conf = confidence
			}
			return true, clamp01(conf), LabelFake, reasoning
		}
	}

	// Rule 2.
	for _, c := range counted {
		if c.Score >= classifierDecisive {
			conf := c.Score
			if conf < confidence {
				conf = confidence
			}
			return true, clamp01(conf), LabelFake, reasoning
		}
	}

	// Rule 3: majority vote across the counted signals decides. An even
	// split means no verdict, whatever the model said.
	fakeVotes, realVotes := 0, 0
	sum := 0.0
	for _, p := range probes {
		sum += p.Score
		if p.Score > 0.5 {
			fakeVotes++
		} else {
			realVotes++
		}
	}
	for _, c := range counted {
		sum += c.Score
		if c.Score > 0.5 {
			fakeVotes++
		} else {
			realVotes++
		}
	}
	if fakeVotes == realVotes {
		conf := confidence
		if conf < uncertainBandLow {
			conf = uncertainBandLow
		}
		if conf > uncertainBandHigh {
			conf = uncertainBandHigh
		}
		return false, conf, LabelUncertain, reasoning
	}

	// The synthesizer's confidence stands when it agrees with the vote.
	// When it dissents, the vote wins and confidence becomes the mean
	// signal strength toward the majority side.
	majorityFake := fakeVotes > realVotes
	if majorityFake != isFake {
		isFake = majorityFake
		avg := sum / float64(len(probes)+len(counted))
		if majorityFake {
			confidence = clamp01(avg)
		} else {
			confidence = clamp01(1 - avg)
		}
	}
	label := LabelAuthentic
	if isFake {
		label = LabelFake
	}
	return isFake, confidence, label, reasoning
}

func avgProbeScore(probes []ProbeFinding) float64 {
	if len(probes) == 0 {
		return 0.5
	}
	sum := 0.0
	for _, p := range probes {
		sum += p.Score
	}
	return sum / float64(len(probes))
}
