package conf

// BackendVersion 当前后端版本号
const BackendVersion = "1.2.0"

// RequiredDBVersion 与当前版本匹配的数据库版本
const RequiredDBVersion = "1.2.0"

// LastCommit 最后commit id
const LastCommit = "4f1de83"
