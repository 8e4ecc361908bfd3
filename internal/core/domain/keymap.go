package domain

import "encoding/json"

// KeymapScope selects the mapping directory: user customizations or vendor recommendations.
type KeymapScope uint8

const (
	// ScopeCustomize is vms/customizeConfigs.
	ScopeCustomize KeymapScope = iota
	// ScopeRecommended is vms/recommendConfigs.
	ScopeRecommended
)

func (s KeymapScope) String() string {
	if s == ScopeRecommended {
		return "recommended"
	}
	return "customize"
}

// KeymapInfo describes which app and resolution a keyboard mapping applies to.
type KeymapInfo struct {
	Version            int        `json:"version"`
	VersionMessage     string     `json:"versionMessage"`
	PackageNameType    int        `json:"packageNameType"`
	PackageNamePattern string     `json:"packageNamePattern"`
	ResolutionType     int        `json:"resolutionType"`
	ResolutionPattern  Resolution `json:"resolutionPattern"`
	Priority           int        `json:"priority"`
	Search             string     `json:"search"`
}

// KeyboardConfig holds the mapping-wide mouse and cancel behaviour.
type KeyboardConfig struct {
	MouseCenter       Point  `json:"mouseCenter"`
	MouseScrollType   int    `json:"mouseScrollType"`
	DiscType          int    `json:"discType"`
	Advertising       bool   `json:"advertising"`
	AdvertiseDuration int    `json:"advertiseDuration"`
	AdvertiseText     string `json:"advertiseText"`
	CancelPoint       Point  `json:"cancelPoint"`
	CancelKey         int    `json:"cancelKey"`
	CancelMode        int    `json:"cancelMode"`
	Cursor            string `json:"cursor"`
	ExtraData         string `json:"extraData"`
}

// CurvePoint is one sample of a swipe gesture.
type CurvePoint struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Timing int `json:"timing"`
}

// KeyData is the typed payload of a key mapping. Curve mappings set Curve; point mappings set Point.
type KeyData struct {
	Key             int          `json:"key"`
	SecondKey       int          `json:"secondKey"`
	ExtraData       string       `json:"extraData"`
	Description     string       `json:"description"`
	MoreDescription string       `json:"moreDescription"`
	HintVisible     bool         `json:"hintVisible"`
	HintOffset      Point        `json:"hintOffset"`
	Curve           []CurvePoint `json:"curve,omitempty"`
	Point           *Point       `json:"point,omitempty"`
	Type            int          `json:"type,omitempty"`
	DownDuration    int          `json:"downDuration,omitempty"`
	UpDuration      int          `json:"upDuration,omitempty"`
	DownDurationEx  int          `json:"downDurationEx,omitempty"`
	UpDurationEx    int          `json:"upDurationEx,omitempty"`
}

// KeyMapping is one entry of a keyboard mapping. Data is kept verbatim.
type KeyMapping struct {
	Class string          `json:"class"`
	Data  json.RawMessage `json:"data"`
}

// Key decodes the entry payload.
func (m KeyMapping) Key() (KeyData, error) {
	var d KeyData
	err := json.Unmarshal(m.Data, &d)
	return d, err
}

// IsCurve reports whether the entry is a swipe gesture rather than a single touch point.
func (m KeyMapping) IsCurve() bool {
	var head struct {
		Curve json.RawMessage `json:"curve"`
	}
	return json.Unmarshal(m.Data, &head) == nil && len(head.Curve) > 0
}

// KeyboardMapping is a .kmp document.
type KeyboardMapping struct {
	Name           string         `json:"-"`
	ConfigInfo     KeymapInfo     `json:"configInfo"`
	KeyboardConfig KeyboardConfig `json:"keyboardConfig"`
	Mappings       []KeyMapping   `json:"keyboardMappings"`
	Extra          Extra          `json:"-"`
}

type keyboardMappingJSON KeyboardMapping

// UnmarshalJSON decodes the modeled members and keeps the rest in Extra.
func (k *KeyboardMapping) UnmarshalJSON(data []byte) error {
	var v keyboardMappingJSON
	extra, err := splitExtra(data, &v, "configInfo", "keyboardConfig", "keyboardMappings")
	if err != nil {
		return err
	}
	name := k.Name
	*k = KeyboardMapping(v)
	k.Name = name
	k.Extra = extra
	return nil
}

// MarshalJSON encodes the modeled members together with Extra.
func (k KeyboardMapping) MarshalJSON() ([]byte, error) {
	return joinExtra(keyboardMappingJSON(k), k.Extra)
}

// KeymapProfile is a .smp mapping settings profile.
type KeymapProfile struct {
	Name                  string          `json:"-"`
	ReduceInertia         bool            `json:"reduceInertia"`
	KeyboardShowGreet     bool            `json:"keyboardShowGreet"`
	JoystickShowGreet     bool            `json:"joystickShowGreet"`
	KeyboardFirstGreet    bool            `json:"keyboardFirstGreet"`
	JoystickFirstGreet    bool            `json:"joystickFirstGreet"`
	KeyboardShowHints     bool            `json:"keyboardShowHints"`
	JoystickShowHints     bool            `json:"joystickShowHints"`
	KeyboardIgnoreVersion int             `json:"keyboardIgnoreVersion"`
	JoystickIgnoreVersion int             `json:"joystickIgnoreVersion"`
	NoticeTimes           int             `json:"noticeTimes"`
	NoticeHash            int64           `json:"noticeHash"`
	ResolutionRelatives   json.RawMessage `json:"resolutionRelatives,omitempty"`
	Extra                 Extra           `json:"-"`
}

type keymapProfileJSON KeymapProfile

// UnmarshalJSON decodes the modeled members and keeps the rest in Extra.
func (p *KeymapProfile) UnmarshalJSON(data []byte) error {
	var v keymapProfileJSON
	extra, err := splitExtra(data, &v,
		"reduceInertia", "keyboardShowGreet", "joystickShowGreet", "keyboardFirstGreet",
		"joystickFirstGreet", "keyboardShowHints", "joystickShowHints", "keyboardIgnoreVersion",
		"joystickIgnoreVersion", "noticeTimes", "noticeHash", "resolutionRelatives",
	)
	if err != nil {
		return err
	}
	name := p.Name
	*p = KeymapProfile(v)
	p.Name = name
	p.Extra = extra
	return nil
}

// MarshalJSON encodes the modeled members together with Extra.
func (p KeymapProfile) MarshalJSON() ([]byte, error) {
	return joinExtra(keymapProfileJSON(p), p.Extra)
}
