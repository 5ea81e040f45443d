package evaluate

// Classification metrics treat values as discrete labels with 1.0 as the
// positive class, e.g. a rain/no-rain target.

// Accuracy returns the fraction of pairs whose labels match exactly.
func Accuracy(predicted, actual []float64) (float64, error) {
	p, a, err := validPairs("accuracy", predicted, actual)
	if err != nil {
		return 0, err
	}

	var correct int
	for i := range a {
		if p[i] == a[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(a)), nil
}

func binaryCounts(p, a []float64) (tp, fp, fn int) {
	for i := range a {
		switch {
		case p[i] == 1.0 && a[i] == 1.0:
			tp++
		case p[i] == 1.0 && a[i] != 1.0:
			fp++
		case p[i] != 1.0 && a[i] == 1.0:
			fn++
		}
	}
	return tp, fp, fn
}

// Precision returns tp/(tp+fp), or 0 when the positive class was never
// predicted.
func Precision(predicted, actual []float64) (float64, error) {
	p, a, err := validPairs("precision", predicted, actual)
	if err != nil {
		return 0, err
	}

	tp, fp, _ := binaryCounts(p, a)
	if tp+fp == 0 {
		return 0, nil
	}
	return float64(tp) / float64(tp+fp), nil
}

// Recall returns tp/(tp+fn), or 0 when the positive class never occurs.
func Recall(predicted, actual []float64) (float64, error) {
	p, a, err := validPairs("recall", predicted, actual)
	if err != nil {
		return 0, err
	}

	tp, _, fn := binaryCounts(p, a)
	if tp+fn == 0 {
		return 0, nil
	}
	return float64(tp) / float64(tp+fn), nil
}

// F1 returns the harmonic mean of precision and recall, or 0 when both are
// zero.
func F1(predicted, actual []float64) (float64, error) {
	precision, err := Precision(predicted, actual)
	if err != nil {
		return 0, err
	}
	recall, err := Recall(predicted, actual)
	if err != nil {
		return 0, err
	}
	if precision+recall == 0 {
		return 0, nil
	}
	return 2.0 * precision * recall / (precision + recall), nil
}
