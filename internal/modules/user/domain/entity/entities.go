package entity

// 用户角色
type UserRole string

const (
	RoleAttendant UserRole = "attendant"
	RoleManager   UserRole = "manager"
)

// 在线状态
type AttendantStatus string

const (
	StatusOnline  AttendantStatus = "online"
	StatusAway    AttendantStatus = "away"
	StatusBusy    AttendantStatus = "busy"
	StatusOffline AttendantStatus = "offline"
)

// User 诊所员工（接待员或经理），演示环境全部来自种子数据
type User struct {
	Uuid   string
	Name   string
	Email  string
	Role   UserRole
	Avatar string
	Status AttendantStatus
}
