package testing

// WithoutStore is a TestCase whose app has no census; recording routes
// answer 503.
type WithoutStore struct {
	TestCase
}

func (w *WithoutStore) SetupTest() {
	if w.Config == nil {
		w.Config = DefaultTestConfig()
	}
	w.Config.WithStore = false
	w.TestCase.SetupTest()
}
