package deepfake

// Probe and synthesizer prompts. The numbered weighting rules in the
// synthesizer prompts are mirrored by the deterministic vote guard in
// vote.go; keep both in sync when tuning thresholds.

const imgArtifactPrompt = `You are an expert forensic image analyst specialising in GAN, diffusion model, and compositing artefacts.

Carefully analyse this image for:
1. GAN fingerprints - repetitive texture patterns, grid-like high-frequency noise in uniform regions
2. Diffusion model smoothing - overly smooth skin lacking pore-level detail, HDR-style over-enhancement
3. Face-swap boundaries - blending halos, abrupt skin-tone shifts at jawline, hairline, or neck
4. Background inconsistencies - incorrect perspective lines, reflections that don't match the subject
5. Compression inconsistencies - mismatched JPEG/PNG block artefact patterns suggesting compositing

Respond with valid JSON only:
{
  "suspicious": <true|false>,
  "score": <0.0 = definitely real, 1.0 = definitely manipulated>,
  "findings": ["specific observation 1", "specific observation 2"],
  "summary": "one sentence verdict"
}`

const imgFacialPrompt = `You are an expert forensic image analyst specialising in facial anatomy and lighting physics.

Carefully analyse this image for:
1. Eye anomalies - asymmetric catchlights, absent specular highlights, distorted iris/pupil, glass-eye effect
2. Teeth irregularities - unnatural smoothness, absent inter-tooth shadows, inconsistent dentition
3. Lighting physics - catchlights must appear at identical angles in both eyes; mismatched lighting direction on face vs background
4. Skin texture - overly smooth or plastic-looking (diffusion); unnatural pore repetition (GAN)
5. Hair and edges - unnatural blending with background, missing strand-level detail, visible halo effect

Respond with valid JSON only:
{
  "suspicious": <true|false>,
  "score": <0.0 = definitely real, 1.0 = definitely manipulated>,
  "findings": ["specific observation 1", "specific observation 2"],
  "summary": "one sentence verdict"
}`

const audProsodyPrompt = `You are an expert forensic audio analyst detecting AI-synthesised speech and voice cloning.

Analyse this audio for prosody-level indicators of synthetic generation:
1. Rhythm anomalies - unnatural word-level timing, missing micro-pauses between phrases
2. Breath patterns - absent or mechanically regular inhalation sounds between sentences
3. Stress patterns - TTS often misplaces lexical stress; flat or over-regularised sentence stress
4. Emotional consistency - flat affect in emotionally-charged content, or unnatural emotion extremes
5. Co-articulation - clipped phoneme transitions at word boundaries typical of concatenative TTS

Respond with valid JSON only:
{
  "suspicious": <true|false>,
  "score": <0.0 = definitely real speech, 1.0 = definitely synthetic>,
  "findings": ["specific observation 1", "specific observation 2"],
  "summary": "one sentence verdict"
}`

const audSpectralPrompt = `You are an expert forensic audio analyst specialising in neural vocoder fingerprints.

Analyse this audio for spectral indicators of AI generation:
1. Neural vocoder artefacts - smoothed spectral envelope typical of WaveNet/HiFi-GAN output
2. Silence patterns - real speech has irregular micro-silences; TTS silences are too uniform
3. Formant transitions - overly smooth F1/F2 formant transitions between vowels (TTS smoothing)
4. Background noise - real recordings have consistent room tone; spliced audio has discontinuous noise floors
5. Harmonic distortion - TTS models often produce slight harmonic distortion absent in real speech

Respond with valid JSON only:
{
  "suspicious": <true|false>,
  "score": <0.0 = definitely real speech, 1.0 = definitely synthetic>,
  "findings": ["specific observation 1", "specific observation 2"],
  "summary": "one sentence verdict"
}`

const vidTemporalPrompt = `You are an expert forensic video analyst specialising in temporal analysis.

Analyse this video for temporal inconsistencies indicating face-swap or AI generation:
1. Inter-frame flickering - facial region flickers while background remains stable (GAN refresh artefact)
2. Blending boundary movement - face-swap mask boundary shifts slightly between frames
3. Motion blur consistency - face motion blur should match head movement; inconsistency = compositing
4. Eye blink patterns - deepfakes often fail at natural blinks (too regular or entirely absent)
5. Head pose tracking - composite faces sometimes show slight position lag relative to head movement

Respond with valid JSON only:
{
  "suspicious": <true|false>,
  "score": <0.0 = definitely real, 1.0 = definitely manipulated>,
  "findings": ["specific observation 1", "specific observation 2"],
  "summary": "one sentence verdict"
}`

const imgSynthPrompt = `You are the FINAL SYNTHESIS adjudicator in a deepfake detection pipeline for an image.

Two specialist forensic probes and two dedicated CV/ML models have already analysed this image:

PROBE A - GAN & Artifact Scan:
  Score: %.2f/1.0
  Findings:
%s
  Summary: %s

PROBE B - Facial Consistency Check:
  Score: %.2f/1.0
  Findings:
%s
  Summary: %s

CV MODEL (ViT) - AI-Generated Image Detector (umm-maybe, trained on SD/MidJourney/DALL-E/GANs):
  Label: %s
  Score: %.2f/1.0  (0 = real/natural, 1 = AI-generated)

SPATIAL CNN (EfficientNet) - Face-Swap Artifact Detector (dima806, trained on face-swap deepfakes):
  Label: %s
  Score: %.2f/1.0  (0 = no artifacts, 1 = spatial/compositing artifacts detected)

Now examine the image yourself and give the final verdict using majority-vote weighting across all 4 signals:

WEIGHTING RULES (in priority order):
1. If both forensic probes score >= 0.70 AND both CNN scores < 0.30:
   CNNs are likely false negatives for this image type; trust the probes; issue FAKE.
2. If Spatial CNN score >= 0.80: face-swap compositing artifacts confirmed; weight strongly for FAKE.
3. If ViT CV score >= 0.80: AI-generated content confirmed; weight strongly for FAKE.
4. If 3 or 4 signals agree on FAKE (score > 0.5): issue FAKE; confidence scales with agreement strength.
5. If 3 or 4 signals agree on REAL (score <= 0.5): issue REAL; confidence scales with agreement strength.
6. If signals are split 2-vs-2 or all conflict: issue UNCERTAIN (confidence 0.40-0.55).
7. NEVER let one low-confidence signal override three high-confidence opposing signals.

Respond with valid JSON only:
{
  "is_fake": <true|false>,
  "confidence": <0.0 = definitely real, 1.0 = definitely fake>,
  "reasoning": "2-3 sentences explaining the final verdict referencing all four signals"
}`

const audSynthPrompt = `You are the FINAL SYNTHESIS adjudicator in a synthetic speech detection pipeline.

Two specialist probes have already analysed this audio:

PROBE A - Prosody Analysis:
  Score: %.2f/1.0
  Findings:
%s
  Summary: %s

PROBE B - Spectral Fingerprint Analysis:
  Score: %.2f/1.0
  Findings:
%s
  Summary: %s

Now listen to the audio yourself and give the final verdict. If the two probes
disagree and your own analysis is inconclusive, issue an uncertain verdict
(confidence 0.40-0.55) rather than siding with either probe.

Respond with valid JSON only:
{
  "is_fake": <true|false>,
  "confidence": <0.0 = definitely real, 1.0 = definitely synthetic>,
  "reasoning": "2-3 sentences explaining the final verdict"
}`

const vidSynthPrompt = `You are the FINAL SYNTHESIS adjudicator in a video deepfake detection pipeline.

Three specialist forensic probes and two dedicated CV/ML models have analysed this video:

PROBE A - Visual Artifact Scan:
  Score: %.2f/1.0
  Findings:
%s
  Summary: %s

PROBE B - Facial Consistency Check:
  Score: %.2f/1.0
  Findings:
%s
  Summary: %s

PROBE C - Temporal Consistency Analysis:
  Score: %.2f/1.0
  Findings:
%s
  Summary: %s

CV MODEL (ViT) - AI-Generated Image Detector on keyframe (umm-maybe, trained on SD/MidJourney/DALL-E/GANs):
  Label: %s
  Score: %.2f/1.0  (0 = real/natural, 1 = AI-generated)

SPATIAL CNN (EfficientNet) - Face-Swap Artifact Detector on keyframe (dima806, trained on face-swap deepfakes):
  Label: %s
  Score: %.2f/1.0  (0 = no spatial artifacts, 1 = compositing/face-swap artifacts detected)

Now examine the video yourself and give the final verdict using majority-vote weighting across all 5 signals:

WEIGHTING RULES (in priority order):
1. If all 3 forensic probes score >= 0.60: strong FAKE consensus from temporal + visual analysis; weight heavily.
2. If Spatial CNN score >= 0.80: face-swap compositing artifacts confirmed in keyframe; weight strongly for FAKE.
3. If ViT CV score >= 0.80: AI-generated frame content confirmed; weight strongly for FAKE.
4. If both CNN models score >= 0.70: pixel-level manipulation confirmed; weight strongly for FAKE.
5. If 3 or more of the 5 signals agree on FAKE: issue FAKE; confidence scales with agreement strength.
6. If 4 or more signals agree on REAL (score <= 0.5): issue REAL with high confidence.
7. If CNN keyframe scores are UNCERTAIN (no extractable frame): rely entirely on the forensic probes.
8. If signals are evenly split with no clear majority: issue UNCERTAIN (confidence 0.40-0.55).
9. NEVER let one low-confidence signal override four high-confidence opposing signals.

Respond with valid JSON only:
{
  "is_fake": <true|false>,
  "confidence": <0.0 = definitely real, 1.0 = definitely fake>,
  "reasoning": "2-3 sentences explaining the final verdict referencing the key signals"
}`
