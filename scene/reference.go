package scene

// LoadMode selects how a loaded scene is combined with the loaded ones.
type LoadMode uint8

const (
	Single   LoadMode = iota // unload every loaded scene first
	Additive                 // keep the loaded scenes
)

func (m LoadMode) String() string {
	if m == Additive {
		return "additive"
	}
	return "single"
}

// Manager loads scenes by build index.
type Manager interface {
	LoadScene(index int, mode LoadMode) error
	LoadSceneAsync(index int, mode LoadMode) *AsyncOperation
}

// Reference is a serializable reference to a scene asset.
type Reference struct {
	Path string `yaml:"path"`
	GUID string `yaml:"guid"`

	// Asset is the design-time selection. It is not serialized.
	Asset *Asset `yaml:"-"`
}

// BeforeSerialize stores the path and guid of the selected asset.
// A nil asset clears both.
func (r *Reference) BeforeSerialize(db *Database) {
	if r.Asset == nil {
		r.Path = ""
		r.GUID = ""
		return
	}

	r.Path = r.Asset.Path
	r.GUID = db.PathToGUID(r.Asset.Path)
}

// AfterDeserialize restores the selected asset from the guid when no
// asset is selected, following the scene if it was moved.
func (r *Reference) AfterDeserialize(db *Database) {
	if r.GUID == "" || r.Asset != nil {
		return
	}

	path := db.GUIDToPath(r.GUID)
	r.Asset = db.Load(path)
	r.Path = path
}

// Index returns the build index of the scene, or -1.
func (r *Reference) Index(build *BuildSettings) int {
	if r.Path == "" {
		return -1
	}
	return build.IndexOf(r.Path)
}

// TryIndex returns the build index and whether it is valid.
func (r *Reference) TryIndex(build *BuildSettings) (int, bool) {
	index := r.Index(build)
	return index, index >= 0
}

// Load loads the scene. It does nothing if the scene is not in the build.
func (r *Reference) Load(mgr Manager, build *BuildSettings, mode LoadMode) error {
	index, ok := r.TryIndex(build)
	if !ok {
		return nil
	}
	return mgr.LoadScene(index, mode)
}

// LoadAsync starts loading the scene. It returns nil if the scene is not
// in the build. activate sets whether the scene is activated once loaded.
func (r *Reference) LoadAsync(mgr Manager, build *BuildSettings, mode LoadMode, activate bool) *AsyncOperation {
	index, ok := r.TryIndex(build)
	if !ok {
		return nil
	}

	op := mgr.LoadSceneAsync(index, mode)
	if op != nil {
		op.AllowSceneActivation = activate
	}

	return op
}
