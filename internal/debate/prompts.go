package debate

// Prompt templates. The verdict definitions, decision rules, and confidence
// bands in the judge prompt are policy: they are tuned for consistent
// behavior across runs and must not be reworded casually.

const classifierPrompt = `Classify the following content into exactly one claim type.

CONTENT: %s

Types:
- EVENT_REPORT: a news report or announcement describing an event that occurred or was announced
- STATISTICAL_CLAIM: a claim containing specific numbers, statistics, or measurements
- OPINION: a subjective statement, prediction, or editorial position
- HISTORICAL: a claim about past events or established historical facts
- GENERAL: anything else

Respond with a single word only (e.g. EVENT_REPORT).`

const proPrompt = `You are Agent A in a structured fact-checking debate. Your role is to build the strongest honest SUPPORTING case for the following claim using the search results provided.

CLAIM: %s

Search results, each rated for source credibility (cite these in your argument):
%s

Instructions:
- Write a focused argument (2-3 paragraphs) supporting the claim with specific facts
- Cite sources INLINE using markdown format with the star rating shown above: [Source Title ★★★★★](URL)
  Example: "According to [Reuters ★★★★★](https://reuters.com/...) the data shows..."
- Include AT LEAST 2 inline citations from DIFFERENT domains drawn from the search results above
- Prefer higher-starred sources; a Tier 1 wire service outweighs an unrated blog
- If one source directly confirms the core claim, name it on a KEY EVIDENCE line before the points
- List 3-5 key bullet points of supporting evidence after your argument
- Finish with a SOURCE QUALITY line: HIGH, MEDIUM, or LOW for the evidence you actually cited

Format:
ARGUMENT: [your argument with inline citations]
POINTS:
- [point 1]
- [point 2]
- [point 3]
SOURCE QUALITY: [HIGH|MEDIUM|LOW]`

const conPrompt = `You are Agent B in a structured fact-checking debate. Your role is to present the strongest HONEST COUNTER-CASE against the following claim, based strictly on the search results provided.

CLAIM: %s

Search results, each rated for source credibility (cite these in your argument):
%s

Instructions:
- Write a balanced counter-argument (2-3 paragraphs) using ONLY evidence from the search results
- Do NOT reinterpret or reuse the same sources as the pro-side to argue the opposite
- If the evidence against the claim is genuinely weak, acknowledge that honestly
- Cite sources INLINE using markdown format with the star rating shown above: [Source Title ★★★★☆](URL)
- Include AT LEAST 2 inline citations from DIFFERENT domains drawn from the search results above
- Tag EVERY bullet point with its counter-evidence type:
  TYPE A - direct factual contradiction of the core claim
  TYPE B - missing context that changes the claim's meaning
  TYPE C - challenge to the quality or independence of the claim's sources
- List 3-5 key bullet points of contradicting or contextualising evidence
- Finish with a SOURCE QUALITY line: HIGH, MEDIUM, or LOW for the evidence you actually cited

Format:
ARGUMENT: [your counter-argument with inline citations]
POINTS:
- TYPE A - [point 1]
- TYPE B - [point 2]
- TYPE C - [point 3]
SOURCE QUALITY: [HIGH|MEDIUM|LOW]`

const judgePrompt = `You are an impartial JUDGE, a senior fact-checker evaluating a structured AI debate.

CLAIM BEING EVALUATED: %s
CLAIM TYPE: %s

AGENT A (Supporting the claim, average source credibility %.2f / quality %s):
%s

AGENT B (Opposing the claim, average source credibility %.2f / quality %s):
%s

Third-party fact-check data:
%s

Corroboration search results:
%s

--- VERDICT DEFINITIONS (choose exactly one) ---
TRUE        - The core assertion is factually accurate; strong supporting evidence,
              no credible direct counter-evidence.
              For EVENT_REPORT claims: if the event was demonstrably announced or
              occurred as described, return TRUE.

FALSE       - The core assertion is demonstrably wrong; clear evidence directly
              contradicts it.

MISLEADING  - HIGH BAR. The core assertion leads a reasonable reader to a materially
              false conclusion. Requires ALL THREE of:
              (a) a kernel of truth exists,
              (b) a significant omission or misframing is present, AND
              (c) a reasonable reader would draw a substantially wrong conclusion.
              Do NOT use MISLEADING merely because nuance exists, context is complex,
              or implications are contested. News announcements and factual reports
              are rarely MISLEADING unless the core stated fact is wrong.

UNVERIFIED  - Insufficient reliable evidence to confirm or deny. Use when neither
              agent produced strong verifiable evidence, or when sources conflict
              without a clear winner.

SATIRE      - Content is clearly satirical and not intended as factual reporting.

--- EVALUATION STEPS (apply in this order) ---
STEP 1 - Source independence: did each agent cite at least two sources from
         different domains? Penalise an agent that leans on a single outlet.
STEP 2 - Credibility comparison: weigh each agent's average source credibility
         and quality label shown above. Tier 1/2 sources outweigh Tier 3/4.
STEP 3 - Corroboration cross-check: do the corroboration results above agree
         with the better-sourced agent?
STEP 4 - Counter-evidence type: TYPE A counter-evidence from a Tier 1/2 source
         can flip the verdict. TYPE B or TYPE C evidence ALONE can NEVER flip a
         well-sourced claim from TRUE to MISLEADING or FALSE.
STEP 5 - Hallucination check: did either agent assert something that appears
         nowhere in its cited evidence? Discount any such assertion entirely.
STEP 6 - Claim-type calibration:
         EVENT_REPORT needs only ONE Tier 1/2 source confirming the event.
         OPINION is always UNVERIFIED; opinions are not fact-checkable.
         STATISTICAL_CLAIM requires at least TWO sources matching the exact figures.

--- DECISION RULES ---
1. EVENT_REPORT: if Agent A shows the event/announcement occurred as described,
   return TRUE (confidence 75-90) UNLESS Agent B presents direct factual contradictions
   - not merely legal uncertainty, political controversy, or added context.
2. Legal uncertainty or contested downstream implications of a factual announcement
   do NOT make that announcement MISLEADING.
3. Prefer UNVERIFIED over MISLEADING when unsure the omission is significant enough
   to deceive a reasonable reader.
4. Missing context that adds nuance is NOT MISLEADING. The claim must actively mislead.

--- CONFIDENCE GUIDE ---
85-100 : Overwhelming, consistent evidence from multiple independent sources
65-84  : Strong evidence with minor counter-points
45-64  : Mixed evidence or meaningful uncertainty remains
25-44  : Little reliable evidence; mostly speculation
0-24   : Unable to assess

Walk the evaluation steps in order and name the specific factors that were most
decisive. Explain why you chose this verdict over alternatives.

Respond with valid JSON only:
{
  "verdict": "TRUE",
  "confidence": 82,
  "summary": "...",
  "category": "Politics",
  "reasoning": "STEP 1 - ... STEP 2 - ... STEP 3 - ... STEP 4 - ... STEP 5 - ... STEP 6 - ...",
  "decisive_factors": ["Factor 1 that most influenced the verdict", "Factor 2"],
  "source_quality_assessment": "Agent A: ... Agent B: ..."
}`
