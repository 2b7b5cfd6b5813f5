package booking

const (
	msgAllFieldsRequired = "All fields required."
	msgSlotTaken         = "Chair is already booked for this time slot."
	msgAlreadyCancelled  = "Booking is already cancelled."
	msgNotOwner          = "You can only cancel your own bookings."
	msgBadChairStatus    = "chairStatus must be one of available, booked, maintenance."
)
