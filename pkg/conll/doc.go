// Package conll reads dependency-annotated sentences in the CoNLL-X format.
//
// # Format
//
// A CoNLL-X file holds one token per line and separates sentences with a
// blank line. Each token line has ten tab-separated columns:
//
//	ID  FORM  LEMMA  CPOSTAG  POSTAG  FEATS  HEAD  DEPREL  PHEAD  PDEPREL
//
// An underscore marks an absent value. HEAD and DEPREL form the surface
// annotation layer; PHEAD and PDEPREL form the projective layer. Lines
// starting with '#' are comments. Multiword-token ranges ("1-2") and empty
// nodes ("1.1") are skipped so that CoNLL-U files with the same ten columns
// can be viewed too.
//
// # Reading
//
// [Reader] streams sentences one at a time so a large treebank can be shown
// while it is still being read:
//
//	r := conll.NewReader(f)
//	for {
//	    sent, err := r.Read()
//	    if err == io.EOF {
//	        break
//	    }
//	    if errors.Is(err, errors.ErrCodeInvalidInput) {
//	        continue // malformed sentence, the reader already skipped it
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    use(sent)
//	}
//
// A malformed line yields an error carrying a [*ParseError]; the reader then
// discards the rest of that sentence, so callers may skip it and continue.
// Any other error is an I/O failure and ends reading.
package conll
