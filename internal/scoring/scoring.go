package scoring

// stageWidth is the score span of one stage: stage n ends at n*stageWidth.
const stageWidth = 3000

var scoreTable = getScoreTable()

// LinePoints returns the points awarded for clearing the given number of
// rows in a single lock. Anything outside 1..4 scores nothing.
func LinePoints(lines int) int {
	return scoreTable[lines]
}

// StageThreshold is the score at which the given stage advances.
func StageThreshold(stage int) int {
	return stage * stageWidth
}

// Advance applies one lock's line clears to score and stage. The stage
// moves up by at most one per call, even if the new score passes several
// thresholds.
func Advance(score, stage, lines int) (int, int) {
	score += LinePoints(lines)
	if score >= StageThreshold(stage) {
		stage++
	}
	return score, stage
}

// getScoreTable returns the points for each line-clear count.
func getScoreTable() map[int]int {
	return map[int]int{
		0: 0,
		1: 100,
		2: 400,
		3: 900,
		4: 1600,
	}
}
