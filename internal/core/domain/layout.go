package domain

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// VMsDirName is the directory under the installation root holding per-instance data.
	VMsDirName = "vms"

	// ConfigDirName is the directory under vms holding instance and global configs.
	ConfigDirName = "config"

	// CustomizeConfigsDirName is the directory under vms holding user keyboard mappings.
	CustomizeConfigsDirName = "customizeConfigs"

	// RecommendConfigsDirName is the directory under vms holding vendor keyboard mappings.
	RecommendConfigsDirName = "recommendConfigs"

	// OperationRecordsDirName is the directory under vms holding macro recordings.
	OperationRecordsDirName = "operationRecords"

	// InstancePrefix prefixes per-instance directories and config files.
	InstancePrefix = "leidian"

	// ConfigExt is the extension of instance and global config files.
	ConfigExt = ".config"

	// GlobalConfigFileName is the name of the installation-wide config file.
	GlobalConfigFileName = "leidians.config"

	// KeymapExt is the extension of keyboard mapping files.
	KeymapExt = ".kmp"

	// ProfileExt is the extension of mapping settings profiles.
	ProfileExt = ".smp"

	// RecordExt is the extension of macro recordings.
	RecordExt = ".record"

	// ConsoleFileName is the control executable shipped with LDPlayer.
	ConsoleFileName = "ldconsole.exe"

	// UserDirName is the per-user state directory.
	UserDirName = ".ldx"

	// UserConfigFileName is the name of the persisted user config.
	UserConfigFileName = "config.json"

	// DefaultEncoding is the code page ldconsole writes its output in.
	DefaultEncoding = "gbk"

	// DefaultCacheCapacity is the number of config files kept in memory.
	DefaultCacheCapacity = 1000

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ConsoleCandidates lists the executable names that mark an installation root, in preference order.
var ConsoleCandidates = []string{ConsoleFileName, "dnconsole.exe", "ldconsole"}

// DefaultUserConfigPath returns the location of the persisted user config under home.
// It joins home, .ldx, ld and config.json.
func DefaultUserConfigPath(home string) string {
	return filepath.Join(home, UserDirName, "ld", UserConfigFileName)
}

// UserHome returns LDX_HOME when set and the OS user home directory otherwise.
func UserHome() (string, error) {
	if home := os.Getenv("LDX_HOME"); home != "" {
		return home, nil
	}
	return os.UserHomeDir()
}

// Installation is a resolved LDPlayer installation root and the control executable used for it.
type Installation struct {
	Root    string
	Console string
}

// NewInstallation returns the installation rooted at root using the bundled ldconsole.
func NewInstallation(root string) Installation {
	return Installation{
		Root:    root,
		Console: filepath.Join(root, ConsoleFileName),
	}
}

// WithConsole returns a copy of the installation that invokes console instead of the bundled executable.
func (i Installation) WithConsole(console string) Installation {
	i.Console = console
	return i
}

// VMsDir returns the directory holding per-instance data.
func (i Installation) VMsDir() string {
	return filepath.Join(i.Root, VMsDirName)
}

// ConfigDir returns the directory holding instance and global configs.
func (i Installation) ConfigDir() string {
	return filepath.Join(i.VMsDir(), ConfigDirName)
}

// CustomizeConfigsDir returns the directory holding user keyboard mappings and profiles.
func (i Installation) CustomizeConfigsDir() string {
	return filepath.Join(i.VMsDir(), CustomizeConfigsDirName)
}

// RecommendConfigsDir returns the directory holding vendor keyboard mappings and profiles.
func (i Installation) RecommendConfigsDir() string {
	return filepath.Join(i.VMsDir(), RecommendConfigsDirName)
}

// OperationRecordsDir returns the directory holding macro recordings.
func (i Installation) OperationRecordsDir() string {
	return filepath.Join(i.VMsDir(), OperationRecordsDirName)
}

// InstanceDir returns the data directory of the instance at index.
func (i Installation) InstanceDir(index int) string {
	return filepath.Join(i.VMsDir(), InstancePrefix+strconv.Itoa(index))
}

// InstanceConfigPath returns the config file of the instance at index.
func (i Installation) InstanceConfigPath(index int) string {
	return filepath.Join(i.ConfigDir(), InstancePrefix+strconv.Itoa(index)+ConfigExt)
}

// GlobalConfigPath returns the installation-wide config file.
func (i Installation) GlobalConfigPath() string {
	return filepath.Join(i.ConfigDir(), GlobalConfigFileName)
}

// ParseInstanceConfigName returns the instance index encoded in a config file name such as
// leidian3.config. The global config and foreign files report false.
func ParseInstanceConfigName(name string) (int, bool) {
	stem, ok := strings.CutSuffix(name, ConfigExt)
	if !ok {
		return 0, false
	}
	digits, ok := strings.CutPrefix(stem, InstancePrefix)
	if !ok || digits == "" {
		return 0, false
	}
	index, err := strconv.Atoi(digits)
	if err != nil || index < 0 || strconv.Itoa(index) != digits {
		return 0, false
	}
	return index, true
}
