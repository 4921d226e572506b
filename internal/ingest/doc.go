// Package ingest turns the rows of a Daylio CSV export into journal days.
//
// A RowSource yields rows keyed by column name; the Pipeline checks each
// row's shape, resolves its Day through the journal and adds the entry.
// Bad rows are logged and skipped. A run that adds no entry at all fails
// with ErrEmptyJournal.
//
//	src, err := ingest.Open("~/Downloads/daylio_export.csv")
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	pipeline := ingest.NewPipeline(journal.New(journal.DefaultConfig(), moods), logger)
//	stats, err := pipeline.Run(src)
package ingest
