package bootstrap

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/zhuyun/ZhuYun/pkg/conf"
	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/fatih/color"
	"github.com/hashicorp/go-version"
)

// InitApplication 初始化应用常量
func InitApplication() {
	c := color.New(color.FgCyan)
	c.Print(`
 _____  _             __   __
|__  / | |__   _   _  \ \ / /   _ _ __
  / /  | '_ \ | | | |  \ V / | | | '_ \
 / /_  | | | || |_| |   | || |_| | | | |
/____| |_| |_| \__,_|   |_| \__,_|_| |_|

   V` + conf.BackendVersion + `  Commit #` + conf.LastCommit + `
================================================

`)
	go CheckUpdate()
}

type GitHubRelease struct {
	URL  string `json:"html_url"`
	Name string `json:"name"`
	Tag  string `json:"tag_name"`
}

// CheckUpdate 检查更新
func CheckUpdate() {
	client := http.Client{Timeout: time.Second * 30}
	resp, err := client.Get("https://api.github.com/repos/zhuyun/zhuyun/releases")
	if err != nil {
		util.Log().Warning("更新检查失败, %s", err)
		return
	}
	defer resp.Body.Close()

	res, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		util.Log().Warning("更新检查失败, %s", err)
		return
	}

	var list []GitHubRelease
	if err := json.Unmarshal(res, &list); err != nil {
		util.Log().Warning("更新检查失败, %s", err)
		return
	}

	if len(list) > 0 {
		present, err1 := version.NewVersion(conf.BackendVersion)
		latest, err2 := version.NewVersion(list[0].Tag)
		if err1 == nil && err2 == nil && latest.GreaterThan(present) {
			util.Log().Info("有新的版本 [%s] 可用，下载：%s", list[0].Name, list[0].URL)
		}
	}
}
