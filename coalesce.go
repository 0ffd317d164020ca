package gotdiff

// pairEdits merges a deletion immediately followed by an insertion at the same
// place into a single edit.
func (d *Differ) pairEdits(diffs []Diff) []Diff {
	merged := make([]Diff, 0, len(diffs))

	for i := 0; i < len(diffs); i++ {
		cur := diffs[i]
		if i+1 < len(diffs) && isReplacementPair(cur, diffs[i+1]) {
			next := diffs[i+1]
			merged = append(merged, Diff{
				DiffID:            d.newID(),
				DiffType:          Edit,
				OriginalCode:      cur.OriginalCode,
				OriginalStartLine: cur.OriginalStartLine,
				OriginalEndLine:   max(cur.OriginalEndLine, next.OriginalEndLine),
				NewCode:           next.NewCode,
				StartLine:         next.StartLine,
				EndLine:           next.EndLine,
				ContextBefore:     cur.ContextBefore,
				ContextAfter:      cur.ContextAfter,
				ElementType:       cur.ElementType,
				ElementIdentifier: cur.ElementIdentifier,
			})
			i++
			continue
		}
		merged = append(merged, cur)
	}

	return merged
}

// isReplacementPair reports whether del and ins are a deletion and an
// insertion adjacent on both the old and the new side.
func isReplacementPair(del, ins Diff) bool {
	if del.DiffType != Deletion || ins.DiffType != Insertion {
		return false
	}

	oldAdjacent := del.OriginalStartLine == ins.OriginalStartLine ||
		del.OriginalEndLine+1 == ins.OriginalStartLine ||
		(del.OriginalEndLine == ins.OriginalStartLine && del.OriginalEndLine > 0)

	newAdjacent := del.EndLine == ins.StartLine ||
		del.EndLine+1 == ins.StartLine

	return oldAdjacent && newAdjacent
}

// groupNearby coalesces runs of hunks whose old-side start lies between the
// run seed's start line and proximityLines past the seed's end line.
func (d *Differ) groupNearby(diffs []Diff) []Diff {
	grouped := make([]Diff, 0, len(diffs))

	for i := 0; i < len(diffs); {
		seed := diffs[i]
		j := i + 1
		for j < len(diffs) && d.isNear(seed, diffs[j]) {
			j++
		}

		if j == i+1 {
			grouped = append(grouped, seed)
			i++
			continue
		}

		grouped = append(grouped, d.mergeRun(diffs[i:j]))
		i = j
	}

	return grouped
}

func (d *Differ) isNear(seed, next Diff) bool {
	return next.OriginalStartLine >= seed.OriginalStartLine &&
		next.OriginalStartLine <= seed.OriginalEndLine+d.proximityLines
}

// mergeRun concatenates a run of hunks into one. The merged type stays a pure
// deletion or insertion only if the seed was one and the other side is empty.
func (d *Differ) mergeRun(run []Diff) Diff {
	seed := run[0]
	out := Diff{
		DiffID:            d.newID(),
		OriginalStartLine: seed.OriginalStartLine,
		OriginalEndLine:   seed.OriginalEndLine,
		StartLine:         seed.StartLine,
		EndLine:           seed.EndLine,
		ContextBefore:     seed.ContextBefore,
		ContextAfter:      seed.ContextAfter,
		ElementType:       seed.ElementType,
		ElementIdentifier: seed.ElementIdentifier,
	}

	var original, updated []byte
	for _, h := range run {
		original = append(original, h.OriginalCode...)
		updated = append(updated, h.NewCode...)
		out.OriginalEndLine = max(out.OriginalEndLine, h.OriginalEndLine)
		out.EndLine = max(out.EndLine, h.EndLine)
		if out.ContextAfter == nil {
			out.ContextAfter = h.ContextAfter
		}
	}
	out.OriginalCode = string(original)
	out.NewCode = string(updated)

	switch {
	case seed.DiffType == Deletion && out.NewCode == "":
		out.DiffType = Deletion
	case seed.DiffType == Insertion && out.OriginalCode == "":
		out.DiffType = Insertion
	default:
		out.DiffType = Edit
	}

	return out
}
