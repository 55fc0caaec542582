package tabclean

// Releasable represents any resource backed by Arrow memory.
//
// Tables and columns implement it. Always call Release() when done:
//
//	t, err := tabclean.Load("data.csv")
//	if err != nil {
//		return err
//	}
//	defer t.Release()
type Releasable interface {
	Release()
}

// WithTable loads path, runs fn on the table and releases it afterwards.
//
// Example:
//
//	err := tabclean.WithTable("data.csv", func(t *tabclean.Table) error {
//		report := tabclean.IdentifyNulls(tabclean.FillNulls(t))
//		fmt.Println(report.Total)
//		return nil
//	})
func WithTable(path string, fn func(*Table) error, opts ...LoadOption) error {
	t, err := Load(path, opts...)
	if err != nil {
		return err
	}
	defer t.Release()
	return fn(t)
}

// ReleaseAll releases every non-nil resource
func ReleaseAll(resources ...Releasable) {
	for _, r := range resources {
		if r != nil {
			r.Release()
		}
	}
}
