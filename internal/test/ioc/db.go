package testioc

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/noahrognon/commande-appli/ioc"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once
	cfgOnce    sync.Once
	cfgErr     error
)

// InitDB 连接 config/local.yaml 中配置的 MySQL, 所有 e2e 测试共用一个连接
func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		ioc.WaitForDBSetup(econf.GetString("mysql.dsn"))
		db = egorm.Load("mysql").Build()
	})
	return db
}

// loadConfig 按本文件位置定位仓库根目录, 不依赖测试的工作目录
func loadConfig() error {
	cfgOnce.Do(func() {
		path := os.Getenv("COMMANDE_TEST_CONFIG")
		if path == "" {
			_, file, _, _ := runtime.Caller(0)
			path = filepath.Join(filepath.Dir(file), "..", "..", "..", "config", "local.yaml")
		}
		content, err := os.ReadFile(path)
		if err != nil {
			cfgErr = err
			return
		}
		cfgErr = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
	})
	return cfgErr
}
