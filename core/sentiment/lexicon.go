package sentiment

// Static weighted lexicons. Loaded once at process start and never mutated,
// so they are safe for unlimited concurrent readers.
//
// The weights grade how strongly a word pulls the polarity of academic
// project chatter (supervisor remarks, student messages); 0.5 is a mild
// signal, 3.0 the strongest.

var positiveWords = map[string]float64{
	"happy":      1.5,
	"excited":    1.5,
	"progress":   1.0,
	"completed":  1.5,
	"finished":   1.5,
	"successful": 1.5,
	"success":    1.5,
	"great":      1.0,
	"good":       0.5,
	"excellent":  1.5,
	"amazing":    2.0,
	"wonderful":  2.0,
	"fantastic":  2.0,
	"achieved":   1.0,
	"solved":     1.5,
	"fixed":      1.0,
	"working":    0.5,
	"improved":   1.0,
	"confident":  1.0,
	"proud":      1.5,
	"relieved":   1.0,
	"optimistic": 1.0,
	"love":       2.0,
	"awesome":    2.0,
	"well":       0.5,
	"impressive": 1.5,
	"thorough":   1.0,
	"clear":      0.5,
}

var negativeWords = map[string]float64{
	"stressed":     2.0,
	"anxious":      2.0,
	"overwhelmed":  2.5,
	"exhausted":    2.0,
	"frustrated":   1.5,
	"stuck":        1.5,
	"impossible":   2.0,
	"failing":      2.5,
	"failed":       2.0,
	"fail":         2.0,
	"pressure":     1.5,
	"difficult":    1.0,
	"hard":         1.0,
	"confused":     1.0,
	"worried":      1.5,
	"nervous":      1.5,
	"panic":        2.5,
	"burnout":      3.0,
	"depressed":    3.0,
	"bad":          1.0,
	"terrible":     2.0,
	"awful":        2.0,
	"horrible":     2.0,
	"worst":        2.0,
	"hate":         2.0,
	"broken":       1.0,
	"late":         0.5,
	"sloppy":       1.5,
	"incomplete":   1.0,
	"unacceptable": 2.0,
	"poor":         1.5,
	"weak":         1.0,
	"behind":       1.0,
}

// strongEmotionWords mark high emotional intensity regardless of polarity.
var strongEmotionWords = map[string]struct{}{
	"overwhelmed": {},
	"panic":       {},
	"burnout":     {},
	"depressed":   {},
	"furious":     {},
	"ecstatic":    {},
	"amazing":     {},
	"terrible":    {},
	"awful":       {},
	"horrible":    {},
	"hate":        {},
	"love":        {},
	"impossible":  {},
	"desperate":   {},
	"thrilled":    {},
}

// negations flip the contribution of the word that follows them.
var negations = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"cannot":  {},
	"can't":   {},
	"don't":   {},
	"doesn't": {},
	"didn't":  {},
	"isn't":   {},
	"wasn't":  {},
	"won't":   {},
	"hardly":  {},
	"barely":  {},
}
