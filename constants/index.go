package constants

const (
	ROLE_ADMIN        = "ADMIN"
	ROLE_MANAGER      = "MANAGER"
	ROLE_RECEPTIONIST = "RECEPTIONIST"
	ROLE_ACCOUNTANT   = "ACCOUNTANT"
)

const (
	ERROR_INTERNAL_ERROR     = "Lỗi hệ thống, vui lòng thử lại sau"
	ERROR_INPUT              = "Dữ liệu đầu vào không hợp lệ"
	ERROR_CREATE             = "Không thể tạo dữ liệu"
	DATA_INPUT_IS_NOT_NUMBER = "Dữ liệu đầu vào phải là số"
	MISSING_LOGIN_INPUT      = "Thiếu tên đăng nhập hoặc mật khẩu"
	INVALID_USERNAME         = "Tên đăng nhập không tồn tại"
	INVALID_PASSWORD         = "Mật khẩu không chính xác"
	ACCOUNT_NOT_ACTIVE       = "Tài khoản đã bị khóa"
	NOT_ADMIN                = "Bạn không có quyền thực hiện thao tác này"
	CAN_NOT_HASH_PASSWORD    = "Không thể mã hóa mật khẩu"
)

// Khóa quy định hệ thống (bảng regulations)
const (
	REGULATION_DEPOSIT_PERCENTAGE  = "deposit_percentage"
	REGULATION_SURCHARGE_RATE      = "surcharge_rate"
	REGULATION_FOREIGN_COEFFICIENT = "foreign_guest_coefficient"
	REGULATION_STANDARD_CAPACITY   = "max_guests_per_room"
)

// Giá trị mặc định khi bảng regulations chưa được cấu hình
const (
	DEFAULT_DEPOSIT_PERCENTAGE  = 30.0
	DEFAULT_SURCHARGE_RATE      = 0.25
	DEFAULT_FOREIGN_COEFFICIENT = 1.5
	DEFAULT_STANDARD_CAPACITY   = 3
)
