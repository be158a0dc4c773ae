package model

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

const (
	// SharePublic 公开分享
	SharePublic = "public"
	// SharePrivate 私密分享，需密码访问
	SharePrivate = "private"
)

// shareUUIDRegexp 分享标识格式，标准UUID
var shareUUIDRegexp = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// Share 项目分享模型
type Share struct {
	gorm.Model
	UUID      string `gorm:"type:varchar(36);unique_index"` // 公开查找键
	ProjectID uint   `gorm:"index:share_project_id"`
	UserID    uint   // 创建用户ID
	Type      string `gorm:"size:16"` // public 或 private
	Password  string `json:"-"`       // 私密分享的密码摘要，空值为公开分享
	Options   string `json:"-" gorm:"size:4294967295"`
	IsActive  bool   `gorm:"index:share_is_active"`
	Expires   *time.Time // 过期时间，空值表示无过期时间
	Views     int        // 浏览数

	// 关联模型
	Project Project `gorm:"PRELOAD:false,association_autoupdate:false"`
	User    User    `gorm:"PRELOAD:false,association_autoupdate:false"`

	// 数据库忽略字段
	OptionsSerialized ShareOption `gorm:"-"`
}

// ShareOption 分享的内容披露设置
type ShareOption struct {
	ExpenseDetails   bool `json:"expense_details"`
	PhaseDetails     bool `json:"phase_details"`
	MaterialsDetails bool `json:"materials_details"`
	IncomeDetails    bool `json:"income_details"`
	PhasePhotos      bool `json:"phase_photos"`
	TeamMembers      bool `json:"team_members"`
	AllowComments    bool `json:"allow_comments"`
}

// IsShareUUID 返回给定字符串是否为合法的分享标识
func IsShareUUID(id string) bool {
	return shareUUIDRegexp.MatchString(strings.ToLower(id))
}

// Create 创建分享
func (share *Share) Create() (uint, error) {
	if err := DB.Create(share).Error; err != nil {
		util.Log().Warning("无法插入分享记录, %s", err)
		return 0, err
	}
	return share.ID, nil
}

// GetShareByUUID 根据公开标识查找分享，不区分是否可用
func GetShareByUUID(uuid string) (*Share, error) {
	var share Share
	result := DB.Where("uuid = ?", strings.ToLower(uuid)).First(&share)
	if result.Error != nil {
		return nil, result.Error
	}
	return &share, nil
}

// GetActiveShareByUUID 根据公开标识查找可用分享
// 已停用的分享与不存在的分享一样返回未找到
func GetActiveShareByUUID(uuid string) (*Share, error) {
	var share Share
	result := DB.Where("uuid = ? and is_active = ?", strings.ToLower(uuid), true).
		First(&share)
	if result.Error != nil {
		return nil, result.Error
	}
	return &share, nil
}

// GetSharesByUserID 获取用户创建的全部分享
func GetSharesByUserID(userID uint) []Share {
	var shares []Share
	DB.Where("user_id = ?", userID).Order("created_at desc").Find(&shares)
	return shares
}

// GetShareByIDAndUser 用主键和创建者获取分享
func GetShareByIDAndUser(ID, userID uint) (*Share, error) {
	var share Share
	result := DB.Where("id = ? and user_id = ?", ID, userID).First(&share)
	if result.Error != nil {
		return nil, result.Error
	}
	return &share, nil
}

// Expired 返回分享是否已过期
func (share *Share) Expired() bool {
	return share.Expires != nil && time.Now().After(*share.Expires)
}

// IsPrivate 返回分享是否需要密码访问
func (share *Share) IsPrivate() bool {
	return share.Type == SharePrivate && share.Password != ""
}

// Viewed 增加访问次数
// 使用数据库原子自增，失败只记录日志，不阻塞访问
func (share *Share) Viewed() {
	share.Views++
	if err := DB.Model(share).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		util.Log().Warning("无法更新分享访问次数, %s", err)
	}
}

// GetProject 获取分享的源项目
func (share *Share) GetProject() *Project {
	if share.Project.ID == 0 {
		share.Project, _ = GetProjectByID(share.ProjectID)
	}
	return &share.Project
}

// GetCreator 获取分享的创建者
func (share *Share) GetCreator() *User {
	if share.User.ID == 0 {
		share.User, _ = GetUserByID(share.UserID)
	}
	return &share.User
}

// Update 更新分享属性
func (share *Share) Update(val map[string]interface{}) error {
	return DB.Model(share).Updates(val).Error
}

// UpdateOptions 更新分享的披露设置
func (share *Share) UpdateOptions() error {
	if err := share.SerializeOptions(); err != nil {
		return err
	}
	return share.Update(map[string]interface{}{"options": share.Options})
}

// Delete 删除分享及其留言
func (share *Share) Delete() error {
	tx := DB.Begin()
	if err := tx.Error; err != nil {
		return err
	}
	if err := tx.Where("share_id = ?", share.ID).Delete(&ShareComment{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(share).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// BeforeSave Save分享前的钩子
func (share *Share) BeforeSave() (err error) {
	err = share.SerializeOptions()
	return err
}

// AfterFind 找到分享后的钩子
func (share *Share) AfterFind() (err error) {
	// 解析披露设置到OptionsSerialized
	if share.Options != "" {
		err = json.Unmarshal([]byte(share.Options), &share.OptionsSerialized)
	}
	return err
}

//SerializeOptions 将序列后的Option写入到数据库字段
func (share *Share) SerializeOptions() (err error) {
	optionsValue, err := json.Marshal(&share.OptionsSerialized)
	share.Options = string(optionsValue)
	return err
}

// CheckPassword 根据明文校验分享密码
func (share *Share) CheckPassword(password string) (bool, error) {
	// 根据存储密码拆分为 Salt 和 Digest
	passwordStore := strings.Split(share.Password, ":")
	if len(passwordStore) != 2 {
		return false, errors.New("Unknown password type")
	}

	//计算 Salt 和密码组合的SHA1摘要
	hash := sha1.New()
	_, err := hash.Write([]byte(password + passwordStore[0]))
	bs := hex.EncodeToString(hash.Sum(nil))
	if err != nil {
		return false, err
	}

	return bs == passwordStore[1], nil
}

// SetPassword 根据给定明文设定分享密码，只存储摘要
func (share *Share) SetPassword(password string) error {
	//生成16位 Salt
	salt := util.RandStringRunes(16)

	//计算 Salt 和密码组合的SHA1摘要
	hash := sha1.New()
	_, err := hash.Write([]byte(password + salt))
	bs := hex.EncodeToString(hash.Sum(nil))
	if err != nil {
		return err
	}

	//存储 Salt 值和摘要， ":"分割
	share.Password = salt + ":" + string(bs)
	return nil
}

// DeactivateExpiredShares 停用过期超过宽限期的分享
// 只软停用，不删除记录
func DeactivateExpiredShares(grace time.Duration) int64 {
	deadline := time.Now().Add(-grace)
	result := DB.Model(&Share{}).
		Where("is_active = ? and expires is not null and expires < ?", true, deadline).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		util.Log().Warning("无法停用过期分享, %s", result.Error)
	}
	return result.RowsAffected
}
