package bishopart

// Version is the release of the module and the bishop command.
const Version = "0.3.0"
