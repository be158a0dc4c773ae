package model

import (
	"github.com/zhuyun/ZhuYun/pkg/conf"
	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/fatih/color"
	"github.com/hashicorp/go-version"
	"github.com/jinzhu/gorm"
)

// needMigration 检查数据库版本，确认是否需要迁移
func needMigration() bool {
	var setting Setting
	if err := DB.Where("name = ?", "db_version").First(&setting).Error; err != nil {
		return true
	}

	current, err := version.NewVersion(setting.Value)
	if err != nil {
		return true
	}
	required, _ := version.NewVersion(conf.RequiredDBVersion)

	return current.LessThan(required)
}

//执行数据迁移
func migration() {
	// 确认是否需要执行迁移
	if !needMigration() {
		util.Log().Info("数据库版本匹配，跳过数据库迁移")
		return
	}

	util.Log().Info("开始进行数据库初始化...")

	// 自动迁移模式
	if conf.DatabaseConfig.Type == "mysql" {
		DB = DB.Set("gorm:table_options", "ENGINE=InnoDB")
	}
	DB.AutoMigrate(&User{}, &Group{}, &Setting{}, &Project{}, &Phase{},
		&PhasePhoto{}, &Expense{}, &Material{}, &TeamMember{}, &Document{},
		&Share{}, &ShareComment{})

	// 创建初始用户组
	addDefaultGroups()

	// 创建初始管理员账户
	addDefaultUser()

	// 向设置数据表添加初始设置
	addDefaultSettings()

	// 迁移完毕后写入数据库版本
	DB.Where(Setting{Name: "db_version"}).
		Assign(Setting{Value: conf.RequiredDBVersion}).
		FirstOrCreate(&Setting{})

	util.Log().Info("数据库初始化结束")
}

func addDefaultGroups() {
	_, err := GetGroupByID(1)
	// 未找到初始用户组时，则创建
	if gorm.IsRecordNotFoundError(err) {
		defaultAdminGroup := Group{
			Name:         "管理员",
			ShareEnabled: true,
			SpeedLimit:   0,
			MaxProjects:  -1,
		}
		if err := DB.Create(&defaultAdminGroup).Error; err != nil {
			util.Log().Panic("无法创建管理员用户组, %s", err)
		}
	}

	err = nil
	_, err = GetGroupByID(2)
	// 未找到初始注册会员用户组时，则创建
	if gorm.IsRecordNotFoundError(err) {
		defaultUserGroup := Group{
			Name:         "注册用户",
			ShareEnabled: true,
			SpeedLimit:   2 << 20,
			MaxProjects:  10,
		}
		if err := DB.Create(&defaultUserGroup).Error; err != nil {
			util.Log().Panic("无法创建初始注册会员用户组, %s", err)
		}
	}
}

func addDefaultUser() {
	_, err := GetUserByID(1)
	password := util.RandStringRunes(8)

	// 未找到初始用户时，则创建
	if gorm.IsRecordNotFoundError(err) {
		defaultUser := NewUser()
		defaultUser.Email = "admin@zhuyun.org"
		defaultUser.Nick = "admin"
		defaultUser.Status = Active
		defaultUser.GroupID = 1
		err := defaultUser.SetPassword(password)
		if err != nil {
			util.Log().Panic("无法创建密码, %s", err)
		}
		if err := DB.Create(&defaultUser).Error; err != nil {
			util.Log().Panic("无法创建初始用户, %s", err)
		}

		c := color.New(color.FgWhite).Add(color.BgBlack).Add(color.Bold)
		util.Log().Info("初始管理员账号：" + c.Sprint("admin@zhuyun.org"))
		util.Log().Info("初始管理员密码：" + c.Sprint(password))
	}
}

func addDefaultSettings() {
	defaultSettings := []Setting{
		{Name: "siteURL", Value: `http://localhost`, Type: "basic"},
		{Name: "siteName", Value: `筑云`, Type: "basic"},
		{Name: "siteDes", Value: `装修工程项目管理`, Type: "basic"},
		{Name: "siteICPId", Value: ``, Type: "basic"},
		{Name: "register_enabled", Value: `1`, Type: "register"},
		{Name: "fromName", Value: `筑云`, Type: "mail"},
		{Name: "fromAdress", Value: `no-reply@zhuyun.org`, Type: "mail"},
		{Name: "smtpHost", Value: ``, Type: "mail"},
		{Name: "smtpPort", Value: `25`, Type: "mail"},
		{Name: "replyTo", Value: ``, Type: "mail"},
		{Name: "smtpUser", Value: ``, Type: "mail"},
		{Name: "smtpPass", Value: ``, Type: "mail"},
		{Name: "smtpEncryption", Value: `0`, Type: "mail"},
		{Name: "mail_keepalive", Value: `30`, Type: "mail"},
		{Name: "share_comment_notify", Value: `1`, Type: "share"},
		{Name: "share_unlock_rate", Value: `10`, Type: "share"},
		{Name: "share_unlock_burst", Value: `5`, Type: "share"},
		{Name: "share_expire_sweep", Value: `0 0 3 * * *`, Type: "cron"},
		{Name: "share_expire_grace", Value: `604800`, Type: "share"},
		{Name: "cron_garbage_collect", Value: `@hourly`, Type: "cron"},
		{Name: "max_document_size", Value: `104857600`, Type: "upload"},
		{Name: "max_photo_size", Value: `20971520`, Type: "upload"},
		{Name: "gravatar_server", Value: `https://www.gravatar.com/`, Type: "avatar"},
	}

	for _, value := range defaultSettings {
		DB.Where(Setting{Name: value.Name}).Create(&value)
	}
}
