package domain

// InstanceConfig is the leidian<N>.config document of one instance.
type InstanceConfig struct {
	Index    int
	Path     string
	Settings Settings
}

// GlobalConfig is the leidians.config document shared by every instance of an installation.
type GlobalConfig struct {
	Path     string
	Settings Settings
}

// Point is a screen coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Resolution is a screen size in pixels.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Hotkey is a key binding with a modifier bitfield.
type Hotkey struct {
	Modifiers int `json:"modifiers"`
	Key       int `json:"key"`
}

// BasicSettings is the window and runtime section of an instance config.
type BasicSettings struct {
	Left                int  `json:"left"`
	Top                 int  `json:"top"`
	Width               int  `json:"width"`
	Height              int  `json:"height"`
	RealHeight          int  `json:"realHeigh"`
	RealWidth           int  `json:"realWidth"`
	IsFirstStart        bool `json:"isForstStart"`
	MulFsAddSize        int  `json:"mulFsAddSize"`
	MulFsAutoSize       int  `json:"mulFsAutoSize"`
	VerticalSync        bool `json:"verticalSync"`
	FsAutoSize          int  `json:"fsAutoSize"`
	AutoRun             bool `json:"autoRun"`
	RootMode            bool `json:"rootMode"`
	HeightFrameRate     bool `json:"heightFrameRate"`
	AdbDebug            int  `json:"adbDebug"`
	AutoRotate          bool `json:"autoRotate"`
	IsForceLandscape    bool `json:"isForceLandscape"`
	StandaloneSysVmdk   bool `json:"standaloneSysVmdk"`
	LockWindow          bool `json:"lockWindow"`
	DisableMouseFastOpt bool `json:"disableMouseFastOpt"`
	HDRQuality          int  `json:"HDRQuality"`
	FPS                 int  `json:"fps"`
	ASTC                bool `json:"astc"`
	RightToolBar        bool `json:"rightToolBar"`
}

// AdvancedSettings is the hardware section of an instance config.
type AdvancedSettings struct {
	Resolution    Resolution `json:"resolution"`
	ResolutionDPI int        `json:"resolutionDpi"`
	CPUCount      int        `json:"cpuCount"`
	MemorySize    int        `json:"memorySize"`
	MicphoneName  string     `json:"micphoneName,omitempty"`
	SpeakerName   string     `json:"speakerName,omitempty"`
}

// PropertySettings is the device identity section of an instance config.
type PropertySettings struct {
	PhoneIMEI         string `json:"phoneIMEI"`
	PhoneIMSI         string `json:"phoneIMSI"`
	PhoneSimSerial    string `json:"phoneSimSerial"`
	PhoneAndroidID    string `json:"phoneAndroidId"`
	PhoneModel        string `json:"phoneModel"`
	PhoneManufacturer string `json:"phoneManufacturer"`
	MacAddress        string `json:"macAddress"`
	PhoneNumber       string `json:"phoneNumber,omitempty"`
}

// NetworkSettings is the bridged network section of an instance config.
type NetworkSettings struct {
	NetworkEnable     bool   `json:"networkEnable"`
	NetworkSwitching  bool   `json:"networkSwitching"`
	NetworkStatic     bool   `json:"networkStatic"`
	NetworkAddress    string `json:"networkAddress"`
	NetworkGateway    string `json:"networkGateway"`
	NetworkSubnetMask string `json:"networkSubnetMask"`
	NetworkDNS1       string `json:"networkDNS1"`
	NetworkDNS2       string `json:"networkDNS2"`
	NetworkInterface  string `json:"networkInterface,omitempty"`
}

// StatusSettings is the shared folder and close behaviour section of an instance config.
type StatusSettings struct {
	SharedApplications string `json:"sharedApplications"`
	SharedPictures     string `json:"sharedPictures"`
	SharedMisc         string `json:"sharedMisc"`
	CloseOption        int    `json:"closeOption"`
	PlayerName         string `json:"playerName"`
}

// Basic decodes the basicSettings section.
func (c *InstanceConfig) Basic() (BasicSettings, error) {
	var v BasicSettings
	err := c.Settings.DecodeSection("basicSettings", &v)
	return v, err
}

// Advanced decodes the advancedSettings section.
func (c *InstanceConfig) Advanced() (AdvancedSettings, error) {
	var v AdvancedSettings
	err := c.Settings.DecodeSection("advancedSettings", &v)
	return v, err
}

// Property decodes the propertySettings section.
func (c *InstanceConfig) Property() (PropertySettings, error) {
	var v PropertySettings
	err := c.Settings.DecodeSection("propertySettings", &v)
	return v, err
}

// Network decodes the networkSettings section.
func (c *InstanceConfig) Network() (NetworkSettings, error) {
	var v NetworkSettings
	err := c.Settings.DecodeSection("networkSettings", &v)
	return v, err
}

// Status decodes the statusSettings section.
func (c *InstanceConfig) Status() (StatusSettings, error) {
	var v StatusSettings
	err := c.Settings.DecodeSection("statusSettings", &v)
	return v, err
}

// Hotkeys decodes the hotkeySettings section keyed by binding name.
func (c *InstanceConfig) Hotkeys() (map[string]Hotkey, error) {
	v := map[string]Hotkey{}
	err := c.Settings.DecodeSection("hotkeySettings", &v)
	return v, err
}

// GlobalSettings is the typed view of leidians.config.
type GlobalSettings struct {
	FramesPerSecond    int    `json:"framesPerSecond"`
	BatchStartInterval int    `json:"batchStartInterval"`
	BatchNewCount      int    `json:"batchNewCount"`
	BatchCloneCount    int    `json:"batchCloneCount"`
	LanguageID         string `json:"languageId"`
	ProductLanguageID  string `json:"productLanguageId"`
	WindowsOrigin      Point  `json:"windowsOrigin"`
	WindowsOffset      Point  `json:"windowsOffset"`
	WindowsRowCount    int    `json:"windowsRowCount"`
	WindowsAutoSize    bool   `json:"windowsAutoSize"`
	WindowsAlignType   int    `json:"windowsAlignType"`
	VMDKFastMode       bool   `json:"vmdkFastMode"`
	IsSSD              bool   `json:"isSSD"`
	ReduceAudio        bool   `json:"reduceAudio"`
	LastIP             string `json:"-"`
}

// Values decodes the typed view of the global config.
func (c *GlobalConfig) Values() (GlobalSettings, error) {
	var v GlobalSettings
	if err := decodeNested(c.Settings.Nested(), &v); err != nil {
		return GlobalSettings{}, err
	}
	if ip, ok := c.Settings.Get("basicSettings.lastIp"); ok {
		v.LastIP, _ = ip.(string)
	}
	return v, nil
}
